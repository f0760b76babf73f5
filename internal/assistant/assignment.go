package assistant

import "strings"

// GenerateAssignment renders the full assignment text for the given
// parameters. A Short length drops the expansion paragraphs.
func GenerateAssignment(p Params) string {
	topic := p.Topic
	short := p.Length == "Short"

	long := func(text string) string {
		if short {
			return ""
		}
		return text + "\n\n"
	}

	var b strings.Builder
	b.WriteString("ASSIGNMENT\n\n")

	b.WriteString("INTRODUCTION\n\n")
	b.WriteString("This assignment explores the topic of " + topic + ". The purpose is to provide a comprehensive understanding of the key concepts, their significance, and practical applications in real-world scenarios. Through this study, we aim to develop a deeper insight into " + topic + " and its relevance in today's context.\n\n")

	b.WriteString("MAIN CONTENT\n\n")
	b.WriteString("Background\n\n")
	b.WriteString(topic + " is an important subject that has gained significant attention in recent years. Understanding its fundamentals is essential for anyone studying this field. The background of " + topic + " involves various historical developments and theoretical foundations that have shaped our current understanding.\n\n")
	b.WriteString(long("The evolution of " + topic + " can be traced back through various stages of development. Early research and studies laid the groundwork for modern interpretations and applications. Over time, advancements in technology and methodology have enhanced our ability to study and apply concepts related to " + topic + "."))

	b.WriteString("Key Concepts\n\n")
	b.WriteString("The fundamental concepts of " + topic + " include several important elements that form the basis of this subject:\n\n")
	b.WriteString("1. Core Principles: The basic principles that govern " + topic + " are essential for understanding how it functions and why it matters.\n\n")
	b.WriteString("2. Theoretical Framework: Various theories and models help explain the mechanisms and processes involved in " + topic + ".\n\n")
	b.WriteString("3. Practical Applications: Understanding how " + topic + " is applied in real-world situations helps bridge the gap between theory and practice.\n\n")
	b.WriteString(long("4. Current Trends: Modern developments and emerging trends in " + topic + " continue to shape the field and open new avenues for research and application.\n\n5. Challenges and Opportunities: Like any field of study, " + topic + " presents both challenges that need to be addressed and opportunities for innovation and growth."))

	b.WriteString("Analysis and Discussion\n\n")
	b.WriteString("A detailed analysis of " + topic + " reveals several important insights. The subject demonstrates complexity and requires careful consideration of multiple factors. When examining " + topic + ", it is important to consider various perspectives and approaches.\n\n")
	b.WriteString(long("Different scholars and practitioners have contributed unique viewpoints on " + topic + ". These diverse perspectives enrich our understanding and help identify areas where further research is needed. The interdisciplinary nature of " + topic + " means that insights from various fields can contribute to a more complete picture.\n\nCritical evaluation of " + topic + " involves assessing both strengths and limitations. While there are many positive aspects and benefits associated with " + topic + ", it is equally important to acknowledge areas where improvements can be made or where questions remain unanswered."))

	b.WriteString("Examples and Applications\n\n")
	b.WriteString("Real-world examples help illustrate the practical relevance of " + topic + ":\n\n")
	b.WriteString("- In educational settings, " + topic + " plays a crucial role in shaping learning outcomes and student development.\n")
	b.WriteString("- Professional applications of " + topic + " demonstrate its value in solving practical problems and improving processes.\n")
	b.WriteString("- Research in " + topic + " continues to generate new knowledge and innovative solutions.\n\n")
	b.WriteString(long("Case studies from various contexts show how " + topic + " has been successfully implemented. These examples provide valuable lessons and demonstrate best practices that can be adapted to different situations. Learning from both successes and failures helps refine our approach to " + topic + "."))

	b.WriteString("CONCLUSION\n\n")
	b.WriteString("In conclusion, " + topic + " represents an important area of study with significant implications for theory and practice. This assignment has explored the fundamental concepts, analyzed key aspects, and examined practical applications of " + topic + ".\n\n")
	b.WriteString("The study of " + topic + " reveals its multifaceted nature and demonstrates why it deserves careful attention and continued research. As we move forward, understanding " + topic + " will remain essential for students, researchers, and practitioners alike.\n\n")
	b.WriteString(long("Future developments in " + topic + " promise to bring new insights and opportunities. By building on current knowledge and addressing existing challenges, we can advance our understanding and application of " + topic + " in meaningful ways."))

	b.WriteString("REFERENCES\n\n")
	b.WriteString("1. Academic textbooks and journals related to " + topic + "\n")
	b.WriteString("2. Research papers and scholarly articles on " + topic + "\n")
	b.WriteString("3. Online educational resources and databases\n")
	b.WriteString("4. Expert opinions and professional publications\n\n")
	b.WriteString("Note: Please add specific references in APA or MLA format as required by your institution.")

	return b.String()
}
