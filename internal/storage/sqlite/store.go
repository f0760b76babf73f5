package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"studentsathi/internal/models"
	"studentsathi/internal/planner"
)

// ErrNotFound is returned when a row the caller named does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps access to the SQLite database backing authenticated sessions.
// Task timestamps are persisted as nanosecond ticks and converted to the
// canonical millisecond model at the scan boundary.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open initializes the store and runs the required migrations.
func Open(dbPath string, logger *slog.Logger) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("empty database path")
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := ensureDir(dbPath); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=ON", dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	s := &Store{db: conn, logger: logger}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the database resources.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func ensureDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            email TEXT NOT NULL UNIQUE,
            password_hash TEXT NOT NULL,
            name TEXT NOT NULL DEFAULT '',
            is_admin INTEGER NOT NULL DEFAULT 0,
            created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS tasks (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            user_id INTEGER NOT NULL,
            subject TEXT NOT NULL,
            topic TEXT NOT NULL,
            duration TEXT NOT NULL,
            priority TEXT NOT NULL DEFAULT '',
            view_type TEXT NOT NULL DEFAULT '',
            subject_color TEXT NOT NULL DEFAULT '',
            is_completed INTEGER NOT NULL DEFAULT 0,
            position INTEGER NOT NULL DEFAULT 0,
            created_ns INTEGER NOT NULL,
            date_ns INTEGER,
            time_hour INTEGER,
            time_minute INTEGER,
            FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
        );`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_user_view ON tasks(user_id, view_type);`,
		`CREATE TABLE IF NOT EXISTS announcements (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            message TEXT NOT NULL,
            created_ns INTEGER NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS feature_requests (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            message TEXT NOT NULL,
            email TEXT NOT NULL DEFAULT '',
            created_ns INTEGER NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS conversations (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            user_id INTEGER NOT NULL,
            question TEXT NOT NULL,
            answer TEXT NOT NULL,
            created_ns INTEGER NOT NULL,
            FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
        );`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// CreateUser registers an account. The first account becomes the admin.
func (s *Store) CreateUser(ctx context.Context, email, passwordHash, name string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return models.User{}, fmt.Errorf("email must not be empty")
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return models.User{}, fmt.Errorf("count users: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users(email, password_hash, name, is_admin) VALUES(?, ?, ?, ?)`,
		email, passwordHash, strings.TrimSpace(name), count == 0)
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("user id: %w", err)
	}
	return s.GetUser(ctx, id)
}

// GetUser fetches an account by id.
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, is_admin FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetUserByEmail fetches an account by email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, is_admin FROM users WHERE email = ?`,
		strings.ToLower(strings.TrimSpace(email))).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// SaveProfile updates the display name of an account.
func (s *Store) SaveProfile(ctx context.Context, userID int64, name string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET name = ? WHERE id = ?`, strings.TrimSpace(name), userID)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddTask inserts a task for a user. Dates arrive in canonical milliseconds
// and are persisted as nanosecond ticks.
func (s *Store) AddTask(ctx context.Context, userID int64, draft models.TaskDraft) error {
	if strings.TrimSpace(draft.Subject) == "" || strings.TrimSpace(draft.Topic) == "" || strings.TrimSpace(draft.Duration) == "" {
		return fmt.Errorf("subject, topic and duration must not be empty")
	}

	var position sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT MAX(position) FROM tasks WHERE user_id = ?`, userID).Scan(&position)
	if err != nil {
		return fmt.Errorf("select position: %w", err)
	}
	next := int64(0)
	if position.Valid {
		next = position.Int64 + 1
	}

	var dateNS any
	if draft.Date != nil {
		dateNS = *draft.Date * 1_000_000
	}
	var hour, minute any
	if draft.Time != nil {
		hour, minute = draft.Time.Hour, draft.Time.Minute
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tasks(user_id, subject, topic, duration, priority, view_type, subject_color, position, created_ns, date_ns, time_hour, time_minute)
         VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, strings.TrimSpace(draft.Subject), strings.TrimSpace(draft.Topic), strings.TrimSpace(draft.Duration),
		draft.Priority, string(draft.ViewType), draft.SubjectColor, next, time.Now().UnixNano(), dateNS, hour, minute)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// ListTasks returns a user's tasks in board order. A non-nil view keeps
// tasks tagged with that view plus untagged ones.
func (s *Store) ListTasks(ctx context.Context, userID int64, view *models.ViewType) ([]models.Task, error) {
	query := `SELECT id, subject, topic, duration, priority, view_type, subject_color, is_completed, created_ns, date_ns, time_hour, time_minute
        FROM tasks WHERE user_id = ?`
	args := []any{userID}
	if view != nil {
		query += ` AND (view_type = '' OR view_type = ?)`
		args = append(args, string(*view))
	}
	query += ` ORDER BY position, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var (
			t         models.Task
			viewType  string
			createdNS int64
			dateNS    sql.NullInt64
			hour      sql.NullInt64
			minute    sql.NullInt64
		)
		if err := rows.Scan(&t.ID, &t.Subject, &t.Topic, &t.Duration, &t.Priority, &viewType, &t.SubjectColor,
			&t.IsCompleted, &createdNS, &dateNS, &hour, &minute); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.ViewType = models.ViewType(viewType)
		t.Created = planner.NanosToMillis(createdNS)
		if dateNS.Valid {
			ms := planner.NanosToMillis(dateNS.Int64)
			t.Date = &ms
		}
		if hour.Valid && minute.Valid {
			t.Time = &models.TimeOfDay{Hour: int(hour.Int64), Minute: int(minute.Int64)}
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ToggleTask flips a task's completion flag.
func (s *Store) ToggleTask(ctx context.Context, userID, taskID int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET is_completed = NOT is_completed WHERE id = ? AND user_id = ?`, taskID, userID)
	if err != nil {
		return fmt.Errorf("toggle task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTask removes a task by id. Ids of the remaining tasks are untouched.
func (s *Store) DeleteTask(ctx context.Context, userID, taskID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, taskID, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearTasks removes every task of a user.
func (s *Store) ClearTasks(ctx context.Context, userID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	return nil
}

// TaskCount returns the number of tasks a user has.
func (s *Store) TaskCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE user_id = ?`, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

// ReorderTasks rewrites board positions to match the given id order. Ids
// not owned by the user are ignored.
func (s *Store) ReorderTasks(ctx context.Context, userID int64, order []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reorder: %w", err)
	}
	defer tx.Rollback()

	for pos, id := range order {
		if _, err := tx.ExecContext(ctx,
			`UPDATE tasks SET position = ? WHERE id = ? AND user_id = ?`, pos, id, userID); err != nil {
			return fmt.Errorf("reorder task: %w", err)
		}
	}
	return tx.Commit()
}

// UndoLastTask deletes the user's most recently created task. An empty list
// is a no-op.
func (s *Store) UndoLastTask(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = (SELECT id FROM tasks WHERE user_id = ? ORDER BY created_ns DESC, id DESC LIMIT 1)`,
		userID)
	if err != nil {
		return fmt.Errorf("undo last task: %w", err)
	}
	return nil
}

// CreateAnnouncement stores a broadcast message.
func (s *Store) CreateAnnouncement(ctx context.Context, message string) (models.Announcement, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.Announcement{}, fmt.Errorf("announcement message must not be empty")
	}

	now := time.Now().UnixNano()
	res, err := s.db.ExecContext(ctx, `INSERT INTO announcements(message, created_ns) VALUES(?, ?)`, message, now)
	if err != nil {
		return models.Announcement{}, fmt.Errorf("insert announcement: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Announcement{}, fmt.Errorf("announcement id: %w", err)
	}
	return models.Announcement{ID: id, Message: message, Created: planner.NanosToMillis(now)}, nil
}

// ListAnnouncements returns all announcements, newest first.
func (s *Store) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, message, created_ns FROM announcements ORDER BY created_ns DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	var out []models.Announcement
	for rows.Next() {
		var (
			a         models.Announcement
			createdNS int64
		)
		if err := rows.Scan(&a.ID, &a.Message, &createdNS); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		a.Created = planner.NanosToMillis(createdNS)
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteAnnouncement removes an announcement by id.
func (s *Store) DeleteAnnouncement(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SubmitFeatureRequest stores user feedback with an optional contact email.
func (s *Store) SubmitFeatureRequest(ctx context.Context, message, email string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return fmt.Errorf("feature request message must not be empty")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feature_requests(message, email, created_ns) VALUES(?, ?, ?)`,
		message, strings.TrimSpace(email), time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("insert feature request: %w", err)
	}
	return nil
}

// SaveConversationEntry appends an assistant question/answer pair to the
// user's conversation log.
func (s *Store) SaveConversationEntry(ctx context.Context, userID int64, question, answer string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversations(user_id, question, answer, created_ns) VALUES(?, ?, ?, ?)`,
		userID, question, answer, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("insert conversation entry: %w", err)
	}
	return nil
}

// UserTasks adapts the store to the planner's task source contract for one
// account.
type UserTasks struct {
	store  *Store
	userID int64
}

// ForUser binds the store to a user for use as a planner task source.
func (s *Store) ForUser(userID int64) *UserTasks {
	return &UserTasks{store: s, userID: userID}
}

// List implements the task source contract.
func (u *UserTasks) List(ctx context.Context, view *models.ViewType) ([]models.Task, error) {
	return u.store.ListTasks(ctx, u.userID, view)
}

// Add implements the task source contract.
func (u *UserTasks) Add(ctx context.Context, draft models.TaskDraft) error {
	return u.store.AddTask(ctx, u.userID, draft)
}

// ToggleCompletion implements the task source contract.
func (u *UserTasks) ToggleCompletion(ctx context.Context, id int64) error {
	return u.store.ToggleTask(ctx, u.userID, id)
}

// Delete implements the task source contract.
func (u *UserTasks) Delete(ctx context.Context, id int64) error {
	return u.store.DeleteTask(ctx, u.userID, id)
}

// ClearAll implements the task source contract.
func (u *UserTasks) ClearAll(ctx context.Context) error {
	return u.store.ClearTasks(ctx, u.userID)
}
