package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-listing-optimizer/internal/domain"
	"github.com/tbourn/go-listing-optimizer/internal/repo"
)

// seedEventsToday burns n quota slots through the production writer so
// the rows carry exactly the timestamps Optimize itself would store.
func seedEventsToday(t *testing.T, db *gorm.DB, email string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := repo.CreateOptimization(context.Background(), db, email, nil); err != nil {
			t.Fatalf("seed event %d: %v", i, err)
		}
	}
}

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:opt_svc_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Email{}, &domain.Optimization{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// fakeExtractor and fakeGenerator let the orchestrator tests pin each
// stage independently.
type fakeExtractor struct {
	details *domain.ProductDetails
	err     error
	calls   int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (*domain.ProductDetails, error) {
	f.calls++
	return f.details, f.err
}

type fakeGenerator struct {
	result  *domain.OptimizationResult
	err     error
	calls   int
	lastIn  string
}

func (f *fakeGenerator) Generate(_ context.Context, description string) (*domain.OptimizationResult, error) {
	f.calls++
	f.lastIn = description
	if f.err != nil {
		return nil, f.err
	}
	// Return a fresh copy; the orchestrator mutates RateLimit.
	out := *f.result
	return &out, nil
}

func baseResult() *domain.OptimizationResult {
	return &domain.OptimizationResult{
		ProductType: "mug",
		Titles:      []domain.RatedItem{{Text: "T", Score: 90}},
		Tags:        []domain.RatedItem{{Text: "t", Score: 80}},
	}
}

func eventCount(t *testing.T, db *gorm.DB, email string) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&domain.Optimization{}).Where("email = ?", email).Count(&n).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	return n
}

func TestOptimize_Success_RecordsEventAndSetsRateLimit(t *testing.T) {
	db := newServiceDB(t)
	ext := &fakeExtractor{details: &domain.ProductDetails{Title: "T", Description: "D", Tags: []string{}}}
	gen := &fakeGenerator{result: baseResult()}
	svc := &OptimizerService{DB: db, Extract: ext, Generate: gen, MaxPerDay: 5}

	res, err := svc.Optimize(context.Background(), "https://www.etsy.com/listing/1", "a@b.com", "Ada")
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if res.RateLimit == nil {
		t.Fatalf("missing rate limit metadata")
	}
	// First call of the day: 5 remaining before, minus this one.
	if res.RateLimit.Remaining != 4 || res.RateLimit.MaxPerDay != 5 {
		t.Fatalf("rateLimit = %+v", res.RateLimit)
	}
	if gen.lastIn != "D" {
		t.Fatalf("generation input = %q; want extracted description", gen.lastIn)
	}
	if n := eventCount(t, db, "a@b.com"); n != 1 {
		t.Fatalf("events = %d; want 1", n)
	}

	// Identity capture happened as a side effect.
	var captured domain.Email
	if err := db.First(&captured, "email = ?", "a@b.com").Error; err != nil {
		t.Fatalf("expected captured email row: %v", err)
	}
	if captured.Name != "Ada" {
		t.Fatalf("captured name = %q", captured.Name)
	}
}

func TestOptimize_LastSlotOfDay(t *testing.T) {
	db := newServiceDB(t)
	// Burn maxPerDay-1 slots today.
	seedEventsToday(t, db, "a@b.com", 4)
	svc := &OptimizerService{
		DB:        db,
		Extract:   &fakeExtractor{details: &domain.ProductDetails{Title: "T", Description: "D"}},
		Generate:  &fakeGenerator{result: baseResult()},
		MaxPerDay: 5,
	}

	res, err := svc.Optimize(context.Background(), "u", "a@b.com", "Ada")
	if err != nil {
		t.Fatalf("Optimize on last slot: %v", err)
	}
	if res.RateLimit.Remaining != 0 {
		t.Fatalf("remaining = %d; want 0", res.RateLimit.Remaining)
	}
	if n := eventCount(t, db, "a@b.com"); n != 5 {
		t.Fatalf("events = %d; want 5", n)
	}
}

func TestOptimize_QuotaExhausted(t *testing.T) {
	db := newServiceDB(t)
	seedEventsToday(t, db, "a@b.com", 5)
	ext := &fakeExtractor{details: &domain.ProductDetails{Title: "T", Description: "D"}}
	gen := &fakeGenerator{result: baseResult()}
	svc := &OptimizerService{DB: db, Extract: ext, Generate: gen, MaxPerDay: 5}

	_, err := svc.Optimize(context.Background(), "u", "a@b.com", "Ada")
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("err = %v; want ErrQuotaExceeded", err)
	}
	// No AI spend when blocked.
	if ext.calls != 0 || gen.calls != 0 {
		t.Fatalf("AI stages called while blocked: extract=%d generate=%d", ext.calls, gen.calls)
	}
	if n := eventCount(t, db, "a@b.com"); n != 5 {
		t.Fatalf("events = %d; want 5 (no new event)", n)
	}
}

func TestOptimize_YesterdayDoesNotCount(t *testing.T) {
	db := newServiceDB(t)
	// Five events just before today's midnight, stored in UTC like every
	// production-written row: quota must be fresh.
	yesterday := StartOfDay(time.Now()).Add(-time.Minute).UTC()
	for i := 0; i < 5; i++ {
		row := domain.Optimization{ID: uuid.NewString(), Email: "a@b.com", CreatedAt: yesterday}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	svc := &OptimizerService{
		DB:        db,
		Extract:   &fakeExtractor{details: &domain.ProductDetails{Title: "T", Description: "D"}},
		Generate:  &fakeGenerator{result: baseResult()},
		MaxPerDay: 5,
	}

	res, err := svc.Optimize(context.Background(), "u", "a@b.com", "Ada")
	if err != nil {
		t.Fatalf("Optimize after reset: %v", err)
	}
	if res.RateLimit.Remaining != 4 {
		t.Fatalf("remaining = %d; want 4", res.RateLimit.Remaining)
	}
}

func TestOptimize_QuotaCountsOnNonUTCServer(t *testing.T) {
	// Run the pipeline with a server clock 12 hours east of UTC. Events
	// are stored in UTC while the daily window opens at local midnight;
	// an event written moments ago must still land inside today's window.
	restore := time.Local
	time.Local = time.FixedZone("UTC+12", 12*3600)
	defer func() { time.Local = restore }()

	db := newServiceDB(t)
	svc := &OptimizerService{
		DB:        db,
		Extract:   &fakeExtractor{details: &domain.ProductDetails{Title: "T", Description: "D"}},
		Generate:  &fakeGenerator{result: baseResult()},
		MaxPerDay: 5,
	}

	first, err := svc.Optimize(context.Background(), "u", "a@b.com", "Ada")
	if err != nil {
		t.Fatalf("first Optimize: %v", err)
	}
	if first.RateLimit.Remaining != 4 {
		t.Fatalf("first remaining = %d; want 4", first.RateLimit.Remaining)
	}

	second, err := svc.Optimize(context.Background(), "u", "a@b.com", "Ada")
	if err != nil {
		t.Fatalf("second Optimize: %v", err)
	}
	if second.RateLimit.Remaining != 3 {
		t.Fatalf("second remaining = %d; want 3 (first event must count in today's window)", second.RateLimit.Remaining)
	}
	if n := eventCount(t, db, "a@b.com"); n != 2 {
		t.Fatalf("events = %d; want 2", n)
	}
}

func TestOptimize_ExtractFailure_NoQuotaConsumed(t *testing.T) {
	db := newServiceDB(t)
	gen := &fakeGenerator{result: baseResult()}
	svc := &OptimizerService{
		DB:        db,
		Extract:   &fakeExtractor{err: ErrExtractFormat},
		Generate:  gen,
		MaxPerDay: 5,
	}

	_, err := svc.Optimize(context.Background(), "u", "a@b.com", "Ada")
	if !errors.Is(err, ErrExtractFormat) {
		t.Fatalf("err = %v; want ErrExtractFormat", err)
	}
	if gen.calls != 0 {
		t.Fatalf("generation ran after failed extraction")
	}
	if n := eventCount(t, db, "a@b.com"); n != 0 {
		t.Fatalf("events = %d; want 0", n)
	}
}

func TestOptimize_GenerateFailure_NoQuotaConsumed(t *testing.T) {
	db := newServiceDB(t)
	svc := &OptimizerService{
		DB:        db,
		Extract:   &fakeExtractor{details: &domain.ProductDetails{Title: "T", Description: "D"}},
		Generate:  &fakeGenerator{err: ErrGenerateBusy},
		MaxPerDay: 5,
	}

	_, err := svc.Optimize(context.Background(), "u", "a@b.com", "Ada")
	if !errors.Is(err, ErrGenerateBusy) {
		t.Fatalf("err = %v; want ErrGenerateBusy", err)
	}
	if n := eventCount(t, db, "a@b.com"); n != 0 {
		t.Fatalf("events = %d; want 0", n)
	}
}

func TestOptimize_QuotaReadFailure_PropagatesRawError(t *testing.T) {
	// No migrations: the ledger read itself fails.
	dsn := fmt.Sprintf("file:opt_svc_raw_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	ext := &fakeExtractor{details: &domain.ProductDetails{Title: "T", Description: "D"}}
	svc := &OptimizerService{DB: db, Extract: ext, Generate: &fakeGenerator{result: baseResult()}, MaxPerDay: 5}

	_, err = svc.Optimize(context.Background(), "u", "a@b.com", "Ada")
	if err == nil {
		t.Fatalf("expected storage error")
	}
	if errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("storage failure must not masquerade as quota exhaustion")
	}
	if ext.calls != 0 {
		t.Fatalf("extraction ran after failed quota read")
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	in := time.Date(2026, 8, 30, 17, 45, 12, 999, loc)
	got := StartOfDay(in)
	want := time.Date(2026, 8, 30, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("StartOfDay = %v; want %v", got, want)
	}
	if got.Location() != loc {
		t.Fatalf("location changed: %v", got.Location())
	}
}
