package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"captionary/internal/models/db_models"
	"captionary/pkg/utils"
)

type fakeSubscriptionRepo struct {
	sub *db_models.Subscription
	err error
}

func (f *fakeSubscriptionRepo) GetCurrent(_ context.Context, _ uuid.UUID) (*db_models.Subscription, error) {
	return f.sub, f.err
}

func TestSubscriptionCurrentDefaultsToFree(t *testing.T) {
	svc := NewSubscriptionService(&fakeSubscriptionRepo{})

	info, err := svc.Current(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, db_models.TierFree, info.Tier)
	assert.Equal(t, db_models.SubStatusActive, info.Status)
	assert.Zero(t, info.RenewsAt)
}

func TestSubscriptionCurrentMapsRow(t *testing.T) {
	ends := time.Now().AddDate(0, 1, 0).Unix()
	svc := NewSubscriptionService(&fakeSubscriptionRepo{sub: &db_models.Subscription{
		Status: db_models.SubStatusActive,
		EndsAt: ends,
		Plan:   db_models.Plan{Tier: db_models.TierPremium},
	}})

	info, err := svc.Current(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, db_models.TierPremium, info.Tier)
	assert.Equal(t, db_models.SubStatusActive, info.Status)
	assert.Equal(t, ends, info.RenewsAt)
}

func TestSubscriptionCurrentRepoFailure(t *testing.T) {
	svc := NewSubscriptionService(&fakeSubscriptionRepo{err: errors.New("connection refused")})

	_, err := svc.Current(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
