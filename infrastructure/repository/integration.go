package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mentoria/commerce-sync-api/infrastructure/database/postgres"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/mentoria/commerce-sync-api/pkg/crypto"
	"github.com/pkg/errors"
)

const integrationsTable = "integrations"

// IntegrationRepository é o cofre de credenciais: uma linha opaca por par
// (usuário, plataforma). Ausência é um estado distinto e não um erro.
type IntegrationRepository interface {
	GetByUserAndPlatform(userID int64, platform domain.Platform) (*domain.Integration, error)
	Upsert(integration *domain.Integration) error
	UpdateSyncStatus(userID int64, platform domain.Platform, status domain.SyncStatus) error
	MarkSynced(userID int64, platform domain.Platform, syncedAt time.Time) error
	ListConnected() ([]*domain.Integration, error)
}

type integrationRepository struct {
	conn   *postgres.Connection
	cipher *crypto.Cipher
}

func NewIntegrationRepository(conn *postgres.Connection, cipher *crypto.Cipher) IntegrationRepository {
	return &integrationRepository{
		conn:   conn,
		cipher: cipher,
	}
}

func (r *integrationRepository) GetByUserAndPlatform(userID int64, platform domain.Platform) (*domain.Integration, error) {
	query, args, err := squirrel.
		Select("i.id, i.user_id, i.platform, i.credentials, i.is_active, i.sync_status, i.last_sync_at, i.created_at, i.updated_at").
		From(integrationsTable + " i").
		Where(squirrel.Eq{"i.user_id": userID, "i.platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	row := r.conn.QueryRow(query, args...)
	integration, err := r.scanIntegration(row)
	if err != nil {
		if err == sql.ErrNoRows {
			// Ainda não conectado: estado válido, não é erro
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear integração")
	}

	return integration, nil
}

func (r *integrationRepository) Upsert(integration *domain.Integration) error {
	encrypted, err := r.encryptCredentials(integration.Credentials)
	if err != nil {
		return err
	}

	query := squirrel.StatementBuilder.
		Insert(integrationsTable).
		Columns("user_id", "platform", "credentials", "is_active", "sync_status", "last_sync_at").
		Values(
			integration.UserID,
			integration.Platform,
			encrypted,
			integration.IsActive,
			integration.SyncStatus,
			integration.LastSyncAt,
		).
		Suffix(`
			ON CONFLICT (user_id, platform) DO UPDATE SET
				credentials = EXCLUDED.credentials,
				is_active = EXCLUDED.is_active,
				sync_status = EXCLUDED.sync_status,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(pqErr, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "erro ao executar a query")
	}

	return nil
}

func (r *integrationRepository) UpdateSyncStatus(userID int64, platform domain.Platform, status domain.SyncStatus) error {
	query, args, err := squirrel.
		Update(integrationsTable).
		Set("sync_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID, "platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar sync_status")
	}

	return nil
}

func (r *integrationRepository) MarkSynced(userID int64, platform domain.Platform, syncedAt time.Time) error {
	query, args, err := squirrel.
		Update(integrationsTable).
		Set("sync_status", domain.SyncStatusConnected).
		Set("last_sync_at", syncedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID, "platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao registrar sincronização")
	}

	return nil
}

func (r *integrationRepository) ListConnected() ([]*domain.Integration, error) {
	query, args, err := squirrel.
		Select("i.id, i.user_id, i.platform, i.credentials, i.is_active, i.sync_status, i.last_sync_at, i.created_at, i.updated_at").
		From(integrationsTable + " i").
		Where(squirrel.Eq{"i.is_active": true}).
		OrderBy("i.user_id ASC, i.platform ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	integrations := make([]*domain.Integration, 0)
	for rows.Next() {
		integration, err := r.scanIntegrationRows(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear integrações")
		}
		integrations = append(integrations, integration)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return integrations, nil
}

func (r *integrationRepository) encryptCredentials(creds domain.Credentials) (string, error) {
	raw, err := domain.EncodeCredentials(creds)
	if err != nil {
		return "", err
	}

	encrypted, err := r.cipher.Encrypt(raw)
	if err != nil {
		return "", errors.Wrap(err, "erro ao cifrar credenciais")
	}

	return encrypted, nil
}

func (r *integrationRepository) decryptCredentials(platform domain.Platform, encrypted string) (domain.Credentials, error) {
	raw, err := r.cipher.Decrypt(encrypted)
	if err != nil {
		return nil, err
	}

	return domain.DecodeCredentials(platform, raw)
}

func (r *integrationRepository) scanIntegration(row *sql.Row) (*domain.Integration, error) {
	integration := &domain.Integration{}
	var encrypted string

	err := row.Scan(
		&integration.ID,
		&integration.UserID,
		&integration.Platform,
		&encrypted,
		&integration.IsActive,
		&integration.SyncStatus,
		&integration.LastSyncAt,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	creds, err := r.decryptCredentials(integration.Platform, encrypted)
	if err != nil {
		return nil, err
	}
	integration.Credentials = creds

	return integration, nil
}

func (r *integrationRepository) scanIntegrationRows(rows *sql.Rows) (*domain.Integration, error) {
	integration := &domain.Integration{}
	var encrypted string

	err := rows.Scan(
		&integration.ID,
		&integration.UserID,
		&integration.Platform,
		&encrypted,
		&integration.IsActive,
		&integration.SyncStatus,
		&integration.LastSyncAt,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	creds, err := r.decryptCredentials(integration.Platform, encrypted)
	if err != nil {
		return nil, err
	}
	integration.Credentials = creds

	return integration, nil
}
