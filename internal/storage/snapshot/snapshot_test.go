package snapshot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alaagym/gym-ledger/internal/models"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func testMember(id, name string) models.Member {
	start, _ := models.ParseDate("2024-02-15")
	end, _ := models.ParseDate("2024-05-15")
	return models.Member{
		ID:              id,
		Name:            name,
		Phone:           "0599123456",
		PlanID:          "3months",
		StartDate:       start,
		EndDate:         end,
		Status:          models.StatusActive,
		TotalPaid:       200,
		RemainingAmount: 100,
		PaymentMethod:   models.PaymentCash,
	}
}

func TestNew_MissingSnapshotUsesSeed(t *testing.T) {
	dir := t.TempDir()
	seed := []models.Member{testMember("101", "أحمد")}

	store, err := New(dir, "gym_members_data", seed, newNoopLogger())
	require.NoError(t, err)

	members, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "101", members[0].ID)
}

func TestNew_CorruptSnapshotFallsBackToSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gym_members_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o644))

	seed := []models.Member{testMember("101", "أحمد"), testMember("102", "سعيد")}
	store, err := New(dir, "gym_members_data", seed, newNoopLogger())
	require.NoError(t, err)

	members, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestStorage_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := New(dir, "gym_members_data", nil, newNoopLogger())
	require.NoError(t, err)

	member := testMember("abc-1", "أحمد")
	require.NoError(t, store.Create(ctx, member))

	// Новое хранилище читает тот же снапшот
	reopened, err := New(dir, "gym_members_data", nil, newNoopLogger())
	require.NoError(t, err)

	got, err := reopened.Read(ctx, "abc-1")
	require.NoError(t, err)
	assert.Equal(t, member, *got)
}

func TestStorage_OrderPreserved(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := New(dir, "gym_members_data", nil, newNoopLogger())
	require.NoError(t, err)

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, store.Create(ctx, testMember(id, "عضو "+id)))
	}

	// Update не меняет позицию записи
	updated := testMember("2", "عضو معدل")
	require.NoError(t, store.Update(ctx, updated))

	members, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "1", members[0].ID)
	assert.Equal(t, "2", members[1].ID)
	assert.Equal(t, "عضو معدل", members[1].Name)
	assert.Equal(t, "3", members[2].ID)
}

func TestStorage_AddThenRemoveRestoresCollection(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := New(dir, "gym_members_data", []models.Member{testMember("101", "أحمد")}, newNoopLogger())
	require.NoError(t, err)

	before, err := store.List(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Create(ctx, testMember("tmp", "مؤقت")))
	count, err := store.Remove(ctx, "tmp")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	after, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStorage_RemoveMissingIsNoop(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := New(dir, "gym_members_data", []models.Member{testMember("101", "أحمد")}, newNoopLogger())
	require.NoError(t, err)

	count, err := store.Remove(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	members, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestStorage_ReadMissing(t *testing.T) {
	dir := t.TempDir()

	store, err := New(dir, "gym_members_data", nil, newNoopLogger())
	require.NoError(t, err)

	_, err = store.Read(context.Background(), "ghost")
	assert.True(t, errors.Is(err, ErrMemberNotFound))
}

func TestStorage_UpdateMissing(t *testing.T) {
	dir := t.TempDir()

	store, err := New(dir, "gym_members_data", nil, newNoopLogger())
	require.NoError(t, err)

	err = store.Update(context.Background(), testMember("ghost", "شبح"))
	assert.True(t, errors.Is(err, ErrMemberNotFound))
}

func TestNew_PersistsSeedSnapshot(t *testing.T) {
	dir := t.TempDir()
	seed := []models.Member{testMember("101", "أحمد")}

	_, err := New(dir, "gym_members_data", seed, newNoopLogger())
	require.NoError(t, err)

	// Резервный набор сразу на диске: второе хранилище читает его
	// из файла, без собственного seed
	data, err := os.ReadFile(filepath.Join(dir, "gym_members_data.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"101"`)

	other, err := New(dir, "gym_members_data", nil, newNoopLogger())
	require.NoError(t, err)

	members, err := other.List(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "101", members[0].ID)
}

func TestNewReader_SeesMutationsFromOtherInstance(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	writer, err := New(dir, "gym_members_data", nil, newNoopLogger())
	require.NoError(t, err)
	require.NoError(t, writer.Create(ctx, testMember("a", "أحمد")))

	reader, err := NewReader(dir, "gym_members_data", nil, newNoopLogger())
	require.NoError(t, err)

	members, err := reader.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)

	// Запись, добавленная другим хранилищем после открытия reader,
	// видна при следующем чтении
	require.NoError(t, writer.Create(ctx, testMember("b", "سعيد")))

	members, err = reader.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "a", members[0].ID)
	assert.Equal(t, "b", members[1].ID)

	got, err := reader.Read(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "سعيد", got.Name)

	// Удаление тоже видно без переоткрытия
	count, err := writer.Remove(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	members, err = reader.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "b", members[0].ID)
}

func TestStorage_CancelledContext(t *testing.T) {
	dir := t.TempDir()

	store, err := New(dir, "gym_members_data", nil, newNoopLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, store.Create(ctx, testMember("1", "أحمد")))
	_, err = store.List(ctx)
	assert.Error(t, err)
}
