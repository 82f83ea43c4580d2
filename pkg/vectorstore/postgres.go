package vectorstore

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"robotics-rag-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultTopK = 5

// Collection names become table names, so restrict them to plain identifiers.
var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// pointRow is the storage shape of a Point. One table per collection.
type pointRow struct {
	Id            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Embedding     pgvector.Vector   `gorm:"type:vector"`
	Title         string            `gorm:"type:text"`
	Content       string            `gorm:"type:text"`
	Section       string            `gorm:"type:text"`
	ChapterNumber int               `gorm:"type:int"`
	Ordinal       int               `gorm:"type:int"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime"`
}

type searchRow struct {
	pointRow
	Score float64
}

// PostgresStore implements Store on Postgres with the pgvector extension.
type PostgresStore struct {
	db *gorm.DB
}

var _ Store = &PostgresStore{}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) HasCollection(ctx context.Context, name string) (bool, error) {
	if err := validateCollectionName(name); err != nil {
		return false, err
	}
	return s.db.WithContext(ctx).Migrator().HasTable(name), nil
}

func (s *PostgresStore) EnsureCollection(ctx context.Context, spec CollectionSpec) error {
	if err := validateCollectionName(spec.Name); err != nil {
		return err
	}
	if spec.Dimensions <= 0 {
		return fmt.Errorf("%w: collection dimensions must be positive", apperrors.ErrInvalid)
	}
	if spec.Distance != DistanceCosine {
		return fmt.Errorf("%w: unsupported distance metric %q", apperrors.ErrInvalid, spec.Distance)
	}

	exists, err := s.HasCollection(ctx, spec.Name)
	if err != nil {
		return err
	}
	if exists {
		// An existing collection is reused as-is, even when its dimensions
		// differ from the requested ones. Mismatches surface on first upsert.
		return nil
	}

	db := s.db.WithContext(ctx)
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return apperrors.Upstream("vector index", err)
	}

	createTable := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id uuid PRIMARY KEY,
		embedding vector(%d) NOT NULL,
		title text NOT NULL DEFAULT '',
		content text NOT NULL DEFAULT '',
		section text NOT NULL DEFAULT '',
		chapter_number int NOT NULL DEFAULT 0,
		ordinal int NOT NULL DEFAULT 0,
		metadata jsonb NOT NULL DEFAULT '{}'::jsonb,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`, spec.Name, spec.Dimensions)
	if err := db.Exec(createTable).Error; err != nil {
		return apperrors.Upstream("vector index", err)
	}

	createIndex := fmt.Sprintf(
		"CREATE INDEX IF NOT EXISTS %s_embedding_idx ON %s USING hnsw (embedding vector_cosine_ops)",
		spec.Name, spec.Name,
	)
	if err := db.Exec(createIndex).Error; err != nil {
		return apperrors.Upstream("vector index", err)
	}

	return nil
}

func (s *PostgresStore) Upsert(ctx context.Context, collection string, points []Point) error {
	if err := validateCollectionName(collection); err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}

	rows := make([]pointRow, len(points))
	for i, p := range points {
		rows[i] = pointRow{
			Id:            p.Id,
			Embedding:     pgvector.NewVector(p.Vector),
			Title:         p.Payload.Title,
			Content:       p.Payload.Content,
			Section:       p.Payload.Section,
			ChapterNumber: p.Payload.ChapterNumber,
			Ordinal:       p.Payload.Ordinal,
			Metadata:      datatypes.JSONMap(p.Payload.Metadata),
		}
	}

	err := s.db.WithContext(ctx).
		Table(collection).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&rows).Error
	if err != nil {
		return apperrors.Upstream("vector index", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection string, id uuid.UUID) error {
	if err := validateCollectionName(collection); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).
		Table(collection).
		Where("id = ?", id).
		Delete(&pointRow{}).Error
	if err != nil {
		return apperrors.Upstream("vector index", err)
	}
	return nil
}

func (s *PostgresStore) Search(ctx context.Context, collection string, vector []float32, topK int) ([]Hit, error) {
	if err := validateCollectionName(collection); err != nil {
		return nil, err
	}
	if topK <= 0 {
		topK = defaultTopK
	}

	vec := pgvector.NewVector(vector)
	var rows []searchRow

	// Cosine distance operator, score = 1 - distance
	err := s.db.WithContext(ctx).
		Table(collection).
		Select("*, 1 - (embedding <=> ?) AS score", vec).
		Order(clause.OrderBy{Expression: clause.Expr{SQL: "embedding <=> ?", Vars: []interface{}{vec}}}).
		Limit(topK).
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Upstream("vector index", err)
	}

	hits := make([]Hit, len(rows))
	for i, r := range rows {
		hits[i] = Hit{
			Id:    r.Id,
			Score: r.Score,
			Payload: Payload{
				Title:         r.Title,
				Content:       r.Content,
				Section:       r.Section,
				ChapterNumber: r.ChapterNumber,
				Ordinal:       r.Ordinal,
				Metadata:      map[string]interface{}(r.Metadata),
			},
		}
	}
	return hits, nil
}

func validateCollectionName(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: collection name %q is not a valid identifier", apperrors.ErrInvalid, name)
	}
	return nil
}
