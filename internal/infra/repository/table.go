package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
)

type DeletePolicy int

const (
	HardDelete DeletePolicy = iota
	// SoftDelete flips a boolean column to false instead of removing the row.
	SoftDelete
)

// table holds the CRUD plumbing shared by every gorm repository.
type table[T any] struct {
	db       *gorm.DB
	ent      entity
	policy   DeletePolicy
	flag     string
	preloads []string
}

func (t table[T]) session(ctx context.Context) *gorm.DB {
	q := t.db.WithContext(ctx)
	for _, p := range t.preloads {
		q = q.Preload(p)
	}
	return q
}

func (t table[T]) create(ctx context.Context, v *T) error {
	err := t.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
	return translate(err, opWrite, t.ent)
}

func (t table[T]) get(ctx context.Context, id any) (*T, error) {
	var v T
	if err := t.session(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, translate(err, opRead, t.ent)
	}
	return &v, nil
}

// update writes every column of v except the key and creation stamp.
func (t table[T]) update(ctx context.Context, v *T) error {
	res := t.db.WithContext(ctx).
		Model(v).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(v)
	if res.Error != nil {
		return translate(res.Error, opWrite, t.ent)
	}
	if res.RowsAffected == 0 {
		return notFound(t.ent)
	}
	return nil
}

func (t table[T]) delete(ctx context.Context, id any) error {
	var res *gorm.DB
	switch t.policy {
	case SoftDelete:
		res = t.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Update(t.flag, false)
	default:
		res = t.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	}
	if res.Error != nil {
		return translate(res.Error, opDelete, t.ent)
	}
	if res.RowsAffected == 0 {
		return notFound(t.ent)
	}
	return nil
}

// list counts and pages the rows selected by scope.
func (t table[T]) list(
	ctx context.Context,
	scope func(*gorm.DB) *gorm.DB,
	opts query.Options,
) (query.Result[T], error) {

	base := t.db.WithContext(ctx).Model(new(T))
	if scope != nil {
		base = scope(base)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return query.Result[T]{}, translate(err, opRead, t.ent)
	}

	page := base
	for _, p := range t.preloads {
		page = page.Preload(p)
	}

	var items []T
	if err := page.
		Order(opts.Sort.String()).
		Limit(opts.Page.Size).
		Offset(opts.Page.Offset()).
		Find(&items).Error; err != nil {
		return query.Result[T]{}, translate(err, opRead, t.ent)
	}

	return query.Result[T]{Items: items, Total: total}, nil
}

// likePattern builds a case-insensitive substring pattern with LIKE
// metacharacters escaped.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}
