package progress

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Profiles
	CreateProfile(ctx context.Context, input CreateProfileInput) (ProfileOutput, error)
	GetProfile(ctx context.Context, id string) (ProfileOutput, error)
	SetActiveGame(ctx context.Context, input SetActiveGameInput) (ProfileOutput, error)

	// Checklist
	Checklist(ctx context.Context, input ChecklistInput) (ChecklistOutput, error)
	Toggle(ctx context.Context, input ToggleInput) (ToggleOutput, error)
	CheckAll(ctx context.Context, input BulkInput) (BulkOutput, error)
	Reset(ctx context.Context, input BulkInput) (BulkOutput, error)
	Violations(ctx context.Context, input ChecklistInput) (ViolationsOutput, error)
	Export(ctx context.Context, input ChecklistInput) (ExportOutput, error)
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)
}
