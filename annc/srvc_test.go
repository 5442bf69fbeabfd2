package annc_test

import (
	"context"
	"testing"

	"github.com/coderelay/backend/annc"
	"github.com/coderelay/backend/srvcerror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListAnncs(t *testing.T) {
	srvc := annc.NewAnncSrvc(annc.NewInMemAnncRepo())
	ctx := context.Background()

	first, err := srvc.CreateAnnc(ctx, annc.CreateAnncParams{
		Title:   "Welcome",
		Content: "The contest starts at 10:00.",
	})
	require.NoError(t, err)
	second, err := srvc.CreateAnnc(ctx, annc.CreateAnncParams{
		Content: "Problem 2 statement clarified.",
	})
	require.NoError(t, err)

	anncs, err := srvc.ListAnncs(ctx)
	require.NoError(t, err)
	require.Len(t, anncs, 2)
	assert.Equal(t, second.UUID, anncs[0].UUID, "newest announcement first")
	assert.Equal(t, first.UUID, anncs[1].UUID)
}

func TestCreateAnncRejectsEmptyContent(t *testing.T) {
	srvc := annc.NewAnncSrvc(annc.NewInMemAnncRepo())

	_, err := srvc.CreateAnnc(context.Background(), annc.CreateAnncParams{Content: "   "})
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, annc.ErrCodeContentEmpty, srvcErr.ErrorCode())
}

func TestDeleteAnnc(t *testing.T) {
	srvc := annc.NewAnncSrvc(annc.NewInMemAnncRepo())
	ctx := context.Background()

	created, err := srvc.CreateAnnc(ctx, annc.CreateAnncParams{Content: "Lunch at 12:30."})
	require.NoError(t, err)

	require.NoError(t, srvc.DeleteAnnc(ctx, created.UUID))

	anncs, err := srvc.ListAnncs(ctx)
	require.NoError(t, err)
	assert.Empty(t, anncs)

	err = srvc.DeleteAnnc(ctx, uuid.New())
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, annc.ErrCodeAnncNotFound, srvcErr.ErrorCode())
}
