package content

import (
	"context"
	"database/sql"
	"errors"
)

type heroPostgresRepo struct{ db *sql.DB }

// NewHeroImagePostgresRepository creates a hero image repository backed by
// the hero_images table.
func NewHeroImagePostgresRepository(db *sql.DB) HeroImageRepository {
	return &heroPostgresRepo{db: db}
}

const heroColumns = `id, title, description, image_url, display_order, is_active, created_at, updated_at`

func (r *heroPostgresRepo) Create(ctx context.Context, h *HeroImage) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO hero_images (title, description, image_url, display_order, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		h.Title, h.Description, h.ImageURL, h.Order, h.IsActive, h.CreatedAt, h.UpdatedAt).Scan(&h.ID)
}

func scanHero(scan func(...interface{}) error) (*HeroImage, error) {
	h := &HeroImage{}
	err := scan(&h.ID, &h.Title, &h.Description, &h.ImageURL, &h.Order,
		&h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *heroPostgresRepo) GetByID(ctx context.Context, id int) (*HeroImage, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+heroColumns+` FROM hero_images WHERE id=$1`, id)
	return scanHero(row.Scan)
}

func (r *heroPostgresRepo) List(ctx context.Context, activeOnly bool) ([]*HeroImage, error) {
	query := `SELECT ` + heroColumns + ` FROM hero_images`
	if activeOnly {
		query += ` WHERE is_active=true`
	}
	query += ` ORDER BY display_order, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]*HeroImage, 0)
	for rows.Next() {
		h, err := scanHero(rows.Scan)
		if err != nil {
			return nil, err
		}
		images = append(images, h)
	}
	return images, rows.Err()
}

func (r *heroPostgresRepo) Update(ctx context.Context, h *HeroImage) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE hero_images
		SET title=$1, description=$2, image_url=$3, display_order=$4, is_active=$5, updated_at=$6
		WHERE id=$7`,
		h.Title, h.Description, h.ImageURL, h.Order, h.IsActive, h.UpdatedAt, h.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *heroPostgresRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hero_images WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type storyPostgresRepo struct{ db *sql.DB }

// NewMakerStoryPostgresRepository creates a maker story repository backed
// by the maker_stories table.
func NewMakerStoryPostgresRepository(db *sql.DB) MakerStoryRepository {
	return &storyPostgresRepo{db: db}
}

const storyColumns = `id, maker_name, age, location, story, image_url, occupation, family_info,
	crafts_specialty, years_of_experience, impact_statement, is_active, display_order, created_at, updated_at`

func (r *storyPostgresRepo) Create(ctx context.Context, m *MakerStory) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO maker_stories
		  (maker_name, age, location, story, image_url, occupation, family_info,
		   crafts_specialty, years_of_experience, impact_statement, is_active, display_order,
		   created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14) RETURNING id`,
		m.MakerName, m.Age, m.Location, m.Story, m.ImageURL, m.Occupation, m.FamilyInfo,
		m.CraftsSpecialty, m.YearsOfExperience, m.ImpactStatement, m.IsActive, m.Order,
		m.CreatedAt, m.UpdatedAt).Scan(&m.ID)
}

func scanStory(scan func(...interface{}) error) (*MakerStory, error) {
	m := &MakerStory{}
	err := scan(&m.ID, &m.MakerName, &m.Age, &m.Location, &m.Story, &m.ImageURL,
		&m.Occupation, &m.FamilyInfo, &m.CraftsSpecialty, &m.YearsOfExperience,
		&m.ImpactStatement, &m.IsActive, &m.Order, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *storyPostgresRepo) GetByID(ctx context.Context, id int) (*MakerStory, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+storyColumns+` FROM maker_stories WHERE id=$1`, id)
	return scanStory(row.Scan)
}

func (r *storyPostgresRepo) List(ctx context.Context, activeOnly bool) ([]*MakerStory, error) {
	query := `SELECT ` + storyColumns + ` FROM maker_stories`
	if activeOnly {
		query += ` WHERE is_active=true`
	}
	query += ` ORDER BY display_order, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stories := make([]*MakerStory, 0)
	for rows.Next() {
		m, err := scanStory(rows.Scan)
		if err != nil {
			return nil, err
		}
		stories = append(stories, m)
	}
	return stories, rows.Err()
}

func (r *storyPostgresRepo) Update(ctx context.Context, m *MakerStory) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE maker_stories
		SET maker_name=$1, age=$2, location=$3, story=$4, image_url=$5, occupation=$6,
		    family_info=$7, crafts_specialty=$8, years_of_experience=$9, impact_statement=$10,
		    is_active=$11, display_order=$12, updated_at=$13
		WHERE id=$14`,
		m.MakerName, m.Age, m.Location, m.Story, m.ImageURL, m.Occupation,
		m.FamilyInfo, m.CraftsSpecialty, m.YearsOfExperience, m.ImpactStatement,
		m.IsActive, m.Order, m.UpdatedAt, m.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *storyPostgresRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM maker_stories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
