//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tablebook/internal/domain/draft"
	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/infra/db"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"
	"tablebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeTx struct {
	reservations *fakeReservationRepo
	promotions   *fakePromotionRepo
	staff        *fakeStaffRepo
}

func (t *fakeTx) Reservations() shared.ReservationRepository { return t.reservations }
func (t *fakeTx) Promotions() shared.PromotionRepository     { return t.promotions }
func (t *fakeTx) Staff() shared.StaffRepository              { return t.staff }
func (t *fakeTx) DB() db.DBTX                                { return nil }

type fakeUoW struct {
	tx       *fakeTx
	beginErr error
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.beginErr != nil {
		return u.beginErr
	}
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeReservationRepo struct {
	inserted  []*reservation.Reservation
	insertErr error
	nextID    uuid.UUID
}

func (r *fakeReservationRepo) Insert(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	if r.insertErr != nil {
		return uuid.Nil, r.insertErr
	}
	r.inserted = append(r.inserted, res)
	return r.nextID, nil
}

func (r *fakeReservationRepo) FindForUpdate(context.Context, db.DBTX, uuid.UUID) (*shared.ReservationSnapshot, error) {
	panic("not used")
}

func (r *fakeReservationRepo) UpdateStatus(context.Context, db.DBTX, uuid.UUID, reservation.Status) error {
	panic("not used")
}

type fakePromotionRepo struct {
	incremented []uuid.UUID
}

func (r *fakePromotionRepo) IncrementUsage(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	r.incremented = append(r.incremented, id)
	return nil
}

type fakeStaffRepo struct{}

func (r *fakeStaffRepo) UpdateLastLogin(context.Context, db.DBTX, uuid.UUID) error { return nil }

type fakeBlobStore struct {
	uploads   int
	uploadErr error
	ref       uuid.UUID
}

func (b *fakeBlobStore) Upload(context.Context, string, string, []byte) (uuid.UUID, error) {
	if b.uploadErr != nil {
		return uuid.Nil, b.uploadErr
	}
	b.uploads++
	return b.ref, nil
}

type fakePublisher struct {
	published []string
	err       error
}

func (p *fakePublisher) PublishAvailabilityChanged(_ context.Context, dateISO string) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, dateISO)
	return nil
}

type fakeAvailability struct {
	occupied map[uuid.UUID]struct{}
	err      error
}

func (a *fakeAvailability) ComputeOccupied(context.Context, string, time.Time, time.Time) (map[uuid.UUID]struct{}, error) {
	if a.err != nil {
		return nil, a.err
	}
	if a.occupied == nil {
		return map[uuid.UUID]struct{}{}, nil
	}
	return a.occupied, nil
}

func (a *fakeAvailability) FreeTables(context.Context, string, string, int) ([]queries.TableView, error) {
	panic("not used")
}

func (a *fakeAvailability) Window(string, string, reservation.Channel) (time.Time, time.Time, error) {
	panic("not used")
}

type fakeViewReader struct {
	view *queries.ReservationView
	err  error
}

func (f *fakeViewReader) FindByID(context.Context, uuid.UUID) (*queries.ReservationView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func (f *fakeViewReader) FindByToken(context.Context, string) (*queries.ReservationView, error) {
	panic("not used")
}

func (f *fakeViewReader) ListActiveOnDate(context.Context, string) ([]queries.ActiveReservation, error) {
	panic("not used")
}

func (f *fakeViewReader) ListOnDate(context.Context, string) ([]queries.ReservationListItem, error) {
	panic("not used")
}

// ---- harness ----

type bookingHarness struct {
	cmd          commands.BookingCommands
	reservations *fakeReservationRepo
	promotions   *fakePromotionRepo
	blobs        *fakeBlobStore
	publisher    *fakePublisher
	availability *fakeAvailability
}

func newBookingHarness(t *testing.T) *bookingHarness {
	t.Helper()

	id := uuid.New()
	h := &bookingHarness{
		reservations: &fakeReservationRepo{nextID: id},
		promotions:   &fakePromotionRepo{},
		blobs:        &fakeBlobStore{ref: uuid.New()},
		publisher:    &fakePublisher{},
		availability: &fakeAvailability{},
	}

	uow := &fakeUoW{tx: &fakeTx{
		reservations: h.reservations,
		promotions:   h.promotions,
		staff:        &fakeStaffRepo{},
	}}
	reader := &fakeViewReader{view: &queries.ReservationView{ID: id, Status: string(reservation.StatusPending)}}

	cfg := config.RestaurantConfig{
		TimeZone:       "Asia/Bangkok",
		DineInDuration: 2 * time.Hour,
		PickupDuration: 30 * time.Minute,
		MinSpendCents:  10000,
		BlockedDates:   []string{"2025-04-13"},
		ProofMaxBytes:  1 << 20,
	}

	h.cmd = commands.NewBookingCommands(uow, h.blobs, h.publisher, h.availability, reader, cfg)
	return h
}

func dineInDraft() draft.Draft {
	tableID := uuid.New()
	d := draft.New(reservation.ChannelDineIn)
	d.DateISO = "2025-03-01"
	d.TimeHHMM = "19:00"
	d.PartySize = 2
	d.TableID = &tableID
	d.Cart = []draft.CartLine{{
		ItemID:         uuid.New(),
		Name:           "Tom Yum Goong",
		UnitPriceCents: 12000,
		Quantity:       2,
	}}
	d.Fields[draft.FieldName] = "Somchai"
	d.Fields[draft.FieldPhone] = "0812345678"
	d.Agreed = true
	d.Proof = &draft.ProofFile{Name: "slip.jpg", ContentType: "image/jpeg", Content: []byte("slip-bytes")}
	return d
}

// ---- tests ----

func TestCommit_Success(t *testing.T) {
	h := newBookingHarness(t)

	view, err := h.cmd.Commit(context.Background(), dineInDraft())
	require.NoError(t, err)

	assert.Equal(t, string(reservation.StatusPending), view.Status)
	require.Len(t, h.reservations.inserted, 1)

	res := h.reservations.inserted[0]
	assert.Equal(t, reservation.StatusPending, res.Status())
	assert.Equal(t, int64(24000), res.Subtotal().Cents())
	assert.NotEmpty(t, res.TrackingToken())
	assert.Equal(t, h.blobs.ref, res.ProofRef())

	assert.Equal(t, 1, h.blobs.uploads)
	assert.Equal(t, []string{"2025-03-01"}, h.publisher.published)
}

func TestCommit_PreconditionOrder(t *testing.T) {
	// A draft failing every precondition reports them one at a time, worst
	// first, as each earlier failure is repaired.
	h := newBookingHarness(t)
	occupied := uuid.New()
	h.availability.occupied = map[uuid.UUID]struct{}{occupied: {}}

	d := dineInDraft()
	d.Fields = map[string]string{}
	d.Agreed = false
	d.Proof = nil
	d.DateISO = "2025-04-13"
	d.Cart[0].Quantity = 1 // 12000 < 2 * 10000
	d.TableID = &occupied

	_, err := h.cmd.Commit(context.Background(), d)
	assert.ErrorIs(t, err, commands.ErrMissingContact)

	d.Fields = map[string]string{draft.FieldName: "Somchai", draft.FieldPhone: "0812345678"}
	_, err = h.cmd.Commit(context.Background(), d)
	assert.ErrorIs(t, err, commands.ErrTermsNotAgreed)

	d.Agreed = true
	_, err = h.cmd.Commit(context.Background(), d)
	assert.ErrorIs(t, err, commands.ErrMissingProof)

	d.Proof = &draft.ProofFile{Name: "slip.jpg", ContentType: "image/jpeg", Content: []byte("x")}
	_, err = h.cmd.Commit(context.Background(), d)
	assert.ErrorIs(t, err, commands.ErrDateBlocked)

	d.DateISO = "2025-03-01"
	_, err = h.cmd.Commit(context.Background(), d)
	assert.ErrorIs(t, err, commands.ErrBelowMinSpend)

	d.Cart[0].Quantity = 2
	_, err = h.cmd.Commit(context.Background(), d)
	assert.ErrorIs(t, err, commands.ErrTableTaken)

	// Nothing was uploaded or persisted along the way
	assert.Zero(t, h.blobs.uploads)
	assert.Empty(t, h.reservations.inserted)
}

func TestCommit_MinSpendIgnoresDiscount(t *testing.T) {
	h := newBookingHarness(t)

	d := dineInDraft() // subtotal 24000, min 2*10000
	d.Promo = &draft.PromoSnapshot{PromotionID: uuid.New(), Code: "SAVE10", DiscountCents: 6000}

	// 24000-6000 pays 18000, below the 20000 minimum, but qualification is
	// pre-discount so the commit goes through.
	view, err := h.cmd.Commit(context.Background(), d)
	require.NoError(t, err)
	assert.NotNil(t, view)

	res := h.reservations.inserted[0]
	assert.Equal(t, int64(6000), res.Discount().Cents())
	require.NotNil(t, res.PromotionID())
	assert.Equal(t, []uuid.UUID{*res.PromotionID()}, h.promotions.incremented)
}

func TestCommit_ProofTooLarge(t *testing.T) {
	h := newBookingHarness(t)

	d := dineInDraft()
	d.Proof.Content = make([]byte, 2<<20)

	_, err := h.cmd.Commit(context.Background(), d)
	assert.ErrorIs(t, err, commands.ErrProofTooLarge)
}

func TestCommit_PickupProofOptionalButSizeChecked(t *testing.T) {
	h := newBookingHarness(t)

	d := dineInDraft()
	d.Channel = reservation.ChannelPickup
	d.TableID = nil
	d.PartySize = 1
	d.Proof.Content = make([]byte, 2<<20)

	_, err := h.cmd.Commit(context.Background(), d)
	assert.ErrorIs(t, err, commands.ErrProofTooLarge)

	d.Proof.Content = []byte("slip-bytes")
	view, err := h.cmd.Commit(context.Background(), d)
	require.NoError(t, err)
	assert.NotNil(t, view)
	assert.Equal(t, 1, h.blobs.uploads)
}

func TestCommit_PickupSkipsTableAndProof(t *testing.T) {
	h := newBookingHarness(t)

	d := dineInDraft()
	d.Channel = reservation.ChannelPickup
	d.TableID = nil
	d.Proof = nil
	d.PartySize = 1

	view, err := h.cmd.Commit(context.Background(), d)
	require.NoError(t, err)
	assert.NotNil(t, view)

	assert.Zero(t, h.blobs.uploads)
	res := h.reservations.inserted[0]
	assert.Equal(t, uuid.Nil, res.ProofRef())
	// 30-minute pickup window
	assert.Equal(t, 30*time.Minute, res.Slot().Duration())
}

func TestCommit_InsertConflictMapsToTableTaken(t *testing.T) {
	// The re-check passed but another commit won the slot between the check
	// and the insert; the exclusion constraint reports the loss.
	h := newBookingHarness(t)
	h.reservations.insertErr = infra.WrapRepoErr("slot overlap", nil, infra.KindConflict)

	_, err := h.cmd.Commit(context.Background(), dineInDraft())
	assert.ErrorIs(t, err, commands.ErrTableTaken)
	assert.Empty(t, h.publisher.published)
}

func TestCommit_UploadFailurePersistsNothing(t *testing.T) {
	h := newBookingHarness(t)
	h.blobs.uploadErr = assert.AnError

	_, err := h.cmd.Commit(context.Background(), dineInDraft())
	assert.ErrorIs(t, err, commands.ErrUploadFailed)

	assert.Empty(t, h.reservations.inserted)
	assert.Empty(t, h.publisher.published)
}

func TestCommit_PublishFailureDoesNotFailCommit(t *testing.T) {
	h := newBookingHarness(t)
	h.publisher.err = assert.AnError

	view, err := h.cmd.Commit(context.Background(), dineInDraft())
	require.NoError(t, err)
	assert.NotNil(t, view)
	require.Len(t, h.reservations.inserted, 1)
}

func TestCommit_AvailabilityOutageBlocksCommit(t *testing.T) {
	h := newBookingHarness(t)
	h.availability.err = assert.AnError

	_, err := h.cmd.Commit(context.Background(), dineInDraft())
	assert.ErrorIs(t, err, commands.ErrStoreUnavailable)
	assert.Zero(t, h.blobs.uploads)
}
