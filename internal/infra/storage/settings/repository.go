package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	gocache "github.com/patrickmn/go-cache"

	"github.com/m04kA/CWS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CWS-BookingService/pkg/psqlbuilder"
)

// Ключ кэша для полного набора настроек
const cacheKeyAll = "site_settings:all"

// Настройки меняются редко, поэтому читаем их через короткий in-memory кэш.
// Кэш инвалидируется при Upsert.
const (
	cacheTTL     = 30 * time.Second
	cacheCleanup = time.Minute
)

// Repository репозиторий key-value настроек сайта
type Repository struct {
	db    dbmetrics.DBExecutor
	cache *gocache.Cache
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{
		db:    db,
		cache: gocache.New(cacheTTL, cacheCleanup),
	}
}

// Get получает значение настройки по ключу
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	values, err := r.GetAll(ctx)
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", ErrSettingNotFound
	}
	return value, nil
}

// GetAll получает все настройки сайта
// Результат кэшируется на cacheTTL
func (r *Repository) GetAll(ctx context.Context) (map[string]string, error) {
	if cached, found := r.cache.Get(cacheKeyAll); found {
		return cached.(map[string]string), nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("key", "value").
		From("site_settings").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		values[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	r.cache.Set(cacheKeyAll, values, gocache.DefaultExpiration)

	return values, nil
}

// Upsert создает или обновляет настройку и сбрасывает кэш
func (r *Repository) Upsert(ctx context.Context, key, value string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("site_settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	r.cache.Delete(cacheKeyAll)

	return nil
}

// Delete удаляет настройку (значение откатится к дефолту при парсинге плана)
func (r *Repository) Delete(ctx context.Context, key string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("site_settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSettingNotFound
	}

	r.cache.Delete(cacheKeyAll)

	return nil
}
