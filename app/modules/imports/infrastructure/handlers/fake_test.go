package importhandlers

import (
	"context"

	"github.com/google/uuid"

	importservice "github.com/matchpoint-club/tournament-hub/app/modules/imports/application"
)

// FakeImportService provides a programmable stub for the import service.
type FakeImportService struct {
	RunImportFunc    func(ctx context.Context, fileData []byte, fileName string) (importservice.MatchedImportData, error)
	CommitImportFunc func(ctx context.Context, tournamentID uuid.UUID, data importservice.MatchedImportData) (*importservice.CommitResult, error)
}

func (f *FakeImportService) RunImport(ctx context.Context, fileData []byte, fileName string) (importservice.MatchedImportData, error) {
	if f.RunImportFunc != nil {
		return f.RunImportFunc(ctx, fileData, fileName)
	}
	return importservice.MatchedImportData{}, nil
}

func (f *FakeImportService) CommitImport(ctx context.Context, tournamentID uuid.UUID, data importservice.MatchedImportData) (*importservice.CommitResult, error) {
	if f.CommitImportFunc != nil {
		return f.CommitImportFunc(ctx, tournamentID, data)
	}
	return &importservice.CommitResult{}, nil
}

var _ importservice.Service = (*FakeImportService)(nil)
