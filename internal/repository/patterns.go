package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/craftlog/pattern-tracker/internal/common"
	"github.com/craftlog/pattern-tracker/internal/entity"
)

// AddPatternRequest carries a reviewed draft plus the flags the draft does
// not know about into the catalog.
type AddPatternRequest struct {
	Draft      entity.PatternDraft
	FilePath   string
	IsFree     bool
	IsFavorite bool
	HaveMade   bool
}

type PatternRepository interface {
	// AddPattern stores a reviewed draft, resolving every lookup value
	// with get-or-create semantics inside one transaction.
	AddPattern(ctx context.Context, req AddPatternRequest) (int64, error)
	GetPattern(ctx context.Context, id int64) (*entity.Pattern, error)
	ListPatterns(ctx context.Context) ([]*entity.Pattern, error)
	DeletePattern(ctx context.Context, id int64) error
	TouchLastViewed(ctx context.Context, id int64) error
}

type patternRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func (r *patternRepository) AddPattern(ctx context.Context, req AddPatternRequest) (int64, error) {
	name := req.Draft.Name
	if name == "" {
		return 0, common.NewAppError("PATTERN_INVALID", "pattern name is required", common.ErrInvalidInput)
	}
	craft := req.Draft.CraftType
	if craft == "" {
		craft = "Unknown"
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, common.WrapError(err, "begin tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var designerID *int64
	if req.Draft.Designer != "" {
		id, err := getOrCreate(ctx, tx, "designers", "name", req.Draft.Designer)
		if err != nil {
			return 0, err
		}
		designerID = &id
	}

	craftTypeID, err := getOrCreate(ctx, tx, "craft_types", "craft", craft)
	if err != nil {
		return 0, err
	}

	// Difficulty is a fixed scale: looked up, never created.
	var difficultyID *int64
	if req.Draft.Difficulty != nil {
		var id int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM difficulties WHERE id = ?`, *req.Draft.Difficulty).Scan(&id)
		if err == nil {
			difficultyID = &id
		} else if !errors.Is(err, sql.ErrNoRows) {
			return 0, common.WrapError(err, "lookup difficulty")
		}
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO patterns (name, designer_id, craft_type_id, difficulty_id,
		                      is_free, is_favorite, have_made, pat_source, file_path, date_added)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name, designerID, craftTypeID, difficultyID,
		boolInt(req.IsFree), boolInt(req.IsFavorite), boolInt(req.HaveMade),
		nullableStr(req.Draft.PatSource), req.FilePath, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, common.WrapError(err, "insert pattern")
	}
	patternID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	links := []struct {
		table, lookupTable, lookupCol, fkCol string
		values                               []string
	}{
		{"pattern_project_types", "project_types", "name", "project_type_id", req.Draft.ProjectTypes},
		{"pattern_tool_sizes", "tool_sizes", "size", "tool_size_id", req.Draft.ToolSizes},
		{"pattern_yarn_weights", "yarn_weights", "weight", "yarn_weight_id", req.Draft.YarnWeights},
		{"pattern_yarn_brands", "yarn_brands", "name", "yarn_brand_id", req.Draft.YarnBrands},
		{"pattern_tags", "tags", "tag", "tag_id", req.Draft.Tags},
	}
	for _, l := range links {
		for _, v := range l.values {
			lookupID, err := getOrCreate(ctx, tx, l.lookupTable, l.lookupCol, v)
			if err != nil {
				return 0, err
			}
			_, err = tx.ExecContext(ctx, fmt.Sprintf(
				`INSERT OR IGNORE INTO %s (pattern_id, %s) VALUES (?, ?)`, l.table, l.fkCol),
				patternID, lookupID)
			if err != nil {
				return 0, common.WrapError(err, "link "+l.table)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, common.WrapError(err, "commit")
	}

	r.logger.Info("repository.pattern.added", "pattern_id", patternID, "name", name, "craft", craft)
	return patternID, nil
}

func (r *patternRepository) GetPattern(ctx context.Context, id int64) (*entity.Pattern, error) {
	p, err := scanPattern(r.db.QueryRowContext(ctx, selectPattern+` WHERE p.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewAppError("PATTERN_NOT_FOUND",
				fmt.Sprintf("no pattern with id %d", id), common.ErrNotFound)
		}
		return nil, err
	}
	if err := r.loadLists(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *patternRepository) ListPatterns(ctx context.Context) ([]*entity.Pattern, error) {
	rows, err := r.db.QueryContext(ctx, selectPattern+` ORDER BY p.date_added DESC, p.id DESC`)
	if err != nil {
		return nil, common.WrapError(err, "list patterns")
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []*entity.Pattern
	for rows.Next() {
		p, err := scanPattern(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range out {
		if err := r.loadLists(ctx, p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *patternRepository) DeletePattern(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patterns WHERE id = ?`, id)
	if err != nil {
		return common.WrapError(err, "delete pattern")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.NewAppError("PATTERN_NOT_FOUND",
			fmt.Sprintf("no pattern with id %d", id), common.ErrNotFound)
	}
	return nil
}

func (r *patternRepository) TouchLastViewed(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE patterns SET last_viewed = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), id)
	return common.WrapError(err, "touch last_viewed")
}

const selectPattern = `
	SELECT p.id, p.name, COALESCE(d.name, ''), ct.craft, p.difficulty_id,
	       COALESCE(p.pat_source, ''), p.file_path,
	       p.is_free, p.is_favorite, p.have_made, p.date_added, p.last_viewed
	FROM patterns p
	LEFT JOIN designers d ON d.id = p.designer_id
	JOIN craft_types ct ON ct.id = p.craft_type_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPattern(row rowScanner) (*entity.Pattern, error) {
	var (
		p            entity.Pattern
		difficultyID sql.NullInt64
		isFree       int
		isFavorite   int
		haveMade     int
		dateAdded    string
		lastViewed   sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &p.Designer, &p.CraftType, &difficultyID,
		&p.PatSource, &p.FilePath, &isFree, &isFavorite, &haveMade, &dateAdded, &lastViewed)
	if err != nil {
		return nil, err
	}
	if difficultyID.Valid {
		v := int(difficultyID.Int64)
		p.Difficulty = &v
	}
	p.IsFree = isFree != 0
	p.IsFavorite = isFavorite != 0
	p.HaveMade = haveMade != 0
	if t, err := time.Parse(time.RFC3339, dateAdded); err == nil {
		p.DateAdded = t
	}
	if lastViewed.Valid {
		if t, err := time.Parse(time.RFC3339, lastViewed.String); err == nil {
			p.LastViewed = &t
		}
	}
	return &p, nil
}

func (r *patternRepository) loadLists(ctx context.Context, p *entity.Pattern) error {
	queries := []struct {
		dst   *[]string
		query string
	}{
		{&p.ProjectTypes, `SELECT t.name FROM project_types t
			JOIN pattern_project_types j ON j.project_type_id = t.id WHERE j.pattern_id = ? ORDER BY t.id`},
		{&p.ToolSizes, `SELECT t.size FROM tool_sizes t
			JOIN pattern_tool_sizes j ON j.tool_size_id = t.id WHERE j.pattern_id = ? ORDER BY t.id`},
		{&p.YarnWeights, `SELECT t.weight FROM yarn_weights t
			JOIN pattern_yarn_weights j ON j.yarn_weight_id = t.id WHERE j.pattern_id = ? ORDER BY t.id`},
		{&p.YarnBrands, `SELECT t.name FROM yarn_brands t
			JOIN pattern_yarn_brands j ON j.yarn_brand_id = t.id WHERE j.pattern_id = ? ORDER BY t.id`},
		{&p.Tags, `SELECT t.tag FROM tags t
			JOIN pattern_tags j ON j.tag_id = t.id WHERE j.pattern_id = ? ORDER BY t.id`},
	}
	for _, q := range queries {
		vals, err := queryStrings(ctx, r.db, q.query, p.ID)
		if err != nil {
			return err
		}
		*q.dst = vals
	}
	return nil
}

func queryStrings(ctx context.Context, db *sql.DB, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()
	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// getOrCreate returns the id of the row in table whose col equals value,
// inserting it first when absent. The unique constraint on col makes the
// insert race-safe; a loser of the race re-reads the winner's row.
func getOrCreate(ctx context.Context, tx *sql.Tx, table, col, value string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id FROM %s WHERE %s = ?`, table, col), value).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, common.WrapError(err, "lookup "+table)
	}
	res, err := tx.ExecContext(ctx,
		fmt.Sprintf(`INSERT OR IGNORE INTO %s (%s) VALUES (?)`, table, col), value)
	if err != nil {
		return 0, common.WrapError(err, "create "+table)
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return res.LastInsertId()
	}
	err = tx.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id FROM %s WHERE %s = ?`, table, col), value).Scan(&id)
	return id, common.WrapError(err, "re-read "+table)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
