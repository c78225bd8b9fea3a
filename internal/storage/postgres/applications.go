package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"applytrack-api/internal/models"
	"applytrack-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationRepo implements storage.ApplicationRepository on top of the
// owner-partitioned JSONB table.
type ApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// GetAll loads the owner's full record set. An owner without a partition
// simply has no records yet; that is not an error.
func (r *ApplicationRepo) GetAll(ctx context.Context, ownerID uuid.UUID) ([]models.Application, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT records FROM application_records WHERE owner_id = $1`, ownerID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []models.Application{}, nil
		}
		log.Printf("Error loading application records for owner %s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: loading application records: %v", storage.ErrUnavailable, err)
	}

	var apps []models.Application
	if err := json.Unmarshal(raw, &apps); err != nil {
		return nil, fmt.Errorf("decoding application records for owner %s: %w", ownerID, err)
	}
	return apps, nil
}

// PutAll replaces the owner's partition with the given record set.
func (r *ApplicationRepo) PutAll(ctx context.Context, ownerID uuid.UUID, apps []models.Application) error {
	if apps == nil {
		apps = []models.Application{}
	}
	raw, err := json.Marshal(apps)
	if err != nil {
		return fmt.Errorf("encoding application records for owner %s: %w", ownerID, err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO application_records (owner_id, records, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (owner_id)
		 DO UPDATE SET records = EXCLUDED.records, updated_at = now()`,
		ownerID, raw)
	if err != nil {
		log.Printf("Error writing application records for owner %s: %v", ownerID, err)
		return fmt.Errorf("%w: writing application records: %v", storage.ErrUnavailable, err)
	}
	return nil
}
