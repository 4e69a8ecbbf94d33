package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/TemirB/settlement-analytics/internal/domain"
)

const (
	// The WHERE makes the append a set insert; on a duplicate tag no row is
	// returned and the current row is read instead.
	addTagSQL = `
		INSERT INTO user_tags (address, tags)
		VALUES ($1, ARRAY[$2]::text[])
		ON CONFLICT (address) DO UPDATE
		SET tags = array_append(user_tags.tags, $2)
		WHERE NOT $2 = ANY(user_tags.tags)
		RETURNING address, tags`

	getTagsSQL = `SELECT address, tags FROM user_tags WHERE address = $1`
)

type TagRepo struct {
	db querier
}

func NewTagRepo(db querier) *TagRepo { return &TagRepo{db: db} }

func (r *TagRepo) AddTag(ctx context.Context, address, tag string) (domain.UserTags, error) {
	row, err := scanUserTags(r.db.QueryRow(ctx, addTagSQL, address, tag))
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.UserTags{}, domain.NewStoreError("add tag", err)
	}

	row, err = scanUserTags(r.db.QueryRow(ctx, getTagsSQL, address))
	if err != nil {
		return domain.UserTags{}, domain.NewStoreError("add tag", err)
	}
	return row, nil
}

// GetTags returns an empty set for an address without a row.
func (r *TagRepo) GetTags(ctx context.Context, address string) (domain.TagSet, error) {
	row, err := r.Lookup(ctx, address)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.TagSet{}, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Tags, nil
}

// Lookup is GetTags without the empty-set translation.
func (r *TagRepo) Lookup(ctx context.Context, address string) (domain.UserTags, error) {
	row, err := scanUserTags(r.db.QueryRow(ctx, getTagsSQL, address))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.UserTags{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.UserTags{}, domain.NewStoreError("get tags", err)
	}
	return row, nil
}

func scanUserTags(row pgx.Row) (domain.UserTags, error) {
	var (
		ut   domain.UserTags
		tags []string
	)
	if err := row.Scan(&ut.Address, &tags); err != nil {
		return domain.UserTags{}, err
	}
	ut.Tags = domain.TagSet(tags)
	if ut.Tags == nil {
		ut.Tags = domain.TagSet{}
	}
	return ut, nil
}
