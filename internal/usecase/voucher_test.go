package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	testhelpers "github.com/vantran/anishop/internal/test"
)

func TestVoucherCreate(t *testing.T) {
	repo := testhelpers.NewVoucherRepositoryStub()
	uc := NewVoucherUseCase(repo)
	ctx := context.Background()

	if _, err := uc.Create(ctx, userActor(), "sale", "", 1000); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
	if _, err := uc.Create(ctx, adminActor(), "  ", "", 1000); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for blank code, got %v", err)
	}
	if _, err := uc.Create(ctx, adminActor(), "sale", "", -1); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for negative fee, got %v", err)
	}

	voucher, err := uc.Create(ctx, adminActor(), "freeship", "free shipping", 0)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if voucher.ID == "" || voucher.Price != 0 {
		t.Fatalf("unexpected voucher %+v", voucher)
	}

	if _, err := uc.Create(ctx, adminActor(), "freeship", "", 5); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestVoucherListAndDelete(t *testing.T) {
	repo := testhelpers.NewVoucherRepositoryStub()
	uc := NewVoucherUseCase(repo)
	ctx := context.Background()

	voucher, err := uc.Create(ctx, adminActor(), "express", "priority handling", 50000)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err := uc.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected list %v err=%v", list, err)
	}

	if err := uc.Delete(ctx, userActor(), voucher.ID); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
	if err := uc.Delete(ctx, adminActor(), voucher.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := uc.Delete(ctx, adminActor(), voucher.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := repo.GetByCode(ctx, "express"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("voucher still present after delete")
	}
}
