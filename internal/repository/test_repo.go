package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizmaker/internal/database"
	"quizmaker/internal/models"
)

// TestRepository stores published test definitions
type TestRepository struct {
	db *database.DB
}

// NewTestRepository creates a new test repository
func NewTestRepository(db *database.DB) *TestRepository {
	return &TestRepository{db: db}
}

// GetTest loads a published test and its questions in display order
func (r *TestRepository) GetTest(ctx context.Context, id string) (*models.TestDefinition, error) {
	query := `
		SELECT id, name, duration_seconds, passing_threshold
		FROM tests
		WHERE id = ? AND published = ` + r.db.Dialect.BoolValue(true)

	test := &models.TestDefinition{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&test.ID,
		&test.Name,
		&test.DurationSeconds,
		&test.PassingThreshold,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get test: %w", err)
	}

	questions, err := getQuestions(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	test.Questions = questions

	return test, nil
}

// ListTests returns every test in the catalog, published or not, ordered by id
func (r *TestRepository) ListTests(ctx context.Context) ([]models.TestDefinition, error) {
	query := `
		SELECT id, name, duration_seconds, passing_threshold
		FROM tests
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tests: %w", err)
	}

	var tests []models.TestDefinition
	for rows.Next() {
		var test models.TestDefinition
		if err := rows.Scan(&test.ID, &test.Name, &test.DurationSeconds, &test.PassingThreshold); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan test: %w", err)
		}
		tests = append(tests, test)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to read tests: %w", err)
	}
	rows.Close()

	for i := range tests {
		questions, err := getQuestions(ctx, r.db, tests[i].ID)
		if err != nil {
			return nil, err
		}
		tests[i].Questions = questions
	}

	return tests, nil
}

// SaveTest publishes a test, replacing any existing definition with the
// same id together with all of its questions
func (r *TestRepository) SaveTest(ctx context.Context, test *models.TestDefinition) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, tx.GetDialect().UpsertTestQuery(),
		test.ID, test.Name, test.DurationSeconds, test.PassingThreshold, true)
	if err != nil {
		return fmt.Errorf("failed to save test %s: %w", test.ID, err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE test_id = ?", test.ID); err != nil {
		return fmt.Errorf("failed to clear questions for %s: %w", test.ID, err)
	}

	insert := `INSERT INTO questions (test_id, position, text, option_1, option_2, option_3, option_4, correct_option)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i, q := range test.Questions {
		if len(q.Options) != models.OptionsPerQuestion {
			return fmt.Errorf("question %d of %s has %d options", i, test.ID, len(q.Options))
		}
		_, err := tx.ExecContext(ctx, insert, test.ID, i, q.Text,
			q.Options[0], q.Options[1], q.Options[2], q.Options[3], q.CorrectOptionIndex)
		if err != nil {
			return fmt.Errorf("failed to save question %d of %s: %w", i, test.ID, err)
		}
	}

	return tx.Commit()
}

// SetPublished hides or re-publishes a test without deleting it
func (r *TestRepository) SetPublished(ctx context.Context, id string, published bool) error {
	query := "UPDATE tests SET published = " + r.db.Dialect.BoolValue(published) +
		", updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to update test: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update test: %w", err)
	}
	if n == 0 {
		return models.ErrTestNotFound
	}
	return nil
}

// Clear deletes every test and question
func (r *TestRepository) Clear(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"questions", "tests"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// SeedDefaultTests saves each of tests that is not already in the catalog.
// Existing definitions are left untouched so edits survive restarts.
func (r *TestRepository) SeedDefaultTests(ctx context.Context, tests []models.TestDefinition) (int, error) {
	seeded := 0
	for i := range tests {
		var count int
		err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tests WHERE id = ?", tests[i].ID).Scan(&count)
		if err != nil {
			return seeded, fmt.Errorf("failed to check test %s: %w", tests[i].ID, err)
		}
		if count > 0 {
			continue
		}
		if err := r.SaveTest(ctx, &tests[i]); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}

func getQuestions(ctx context.Context, db database.DBTX, testID string) ([]models.Question, error) {
	query := `
		SELECT text, option_1, option_2, option_3, option_4, correct_option
		FROM questions
		WHERE test_id = ?
		ORDER BY position
	`
	rows, err := db.QueryContext(ctx, query, testID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		q := models.Question{Options: make([]string, models.OptionsPerQuestion)}
		if err := rows.Scan(&q.Text, &q.Options[0], &q.Options[1], &q.Options[2], &q.Options[3], &q.CorrectOptionIndex); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}

	return questions, nil
}
