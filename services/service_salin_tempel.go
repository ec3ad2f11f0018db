package services

import (
	"context"
	"os"
	"time"

	"salintempel/dto"
	"salintempel/internal/repository"
	"salintempel/model"
)

// StrictValidation reports whether required-field validation is enabled. The
// switch exists because the upstream product never settled on enforcing
// title/content; default is the permissive behavior.
func StrictValidation() bool {
	return os.Getenv("STRICT_VALIDATION") == "true"
}

// ValidateSalinTempel returns one message per missing required field, or nil
// when the payload is acceptable (always nil in permissive mode).
func ValidateSalinTempel(body dto.CreateSalinTempelDTO) []string {
	if !StrictValidation() {
		return nil
	}
	var errs []string
	if body.Title == "" {
		errs = append(errs, "Title is required.")
	}
	if body.Content == "" {
		errs = append(errs, "Content is required.")
	}
	return errs
}

// CreateSalinTempel inserts any tag names not yet known, then persists the
// post with the full tag list and zeroed like state. Tags are only ever
// created here; edit never inserts them.
func CreateSalinTempel(
	ctx context.Context,
	posts repository.SalinTempelRepository,
	tags repository.TagRepository,
	body dto.CreateSalinTempelDTO,
) (*model.SalinTempel, error) {
	known, err := tags.Names(ctx)
	if err != nil {
		return nil, err
	}
	knownSet := make(map[string]bool, len(known))
	for _, name := range known {
		knownSet[name] = true
	}
	var missing []string
	for _, name := range body.Tags {
		if !knownSet[name] {
			knownSet[name] = true
			missing = append(missing, name)
		}
	}
	if err := tags.InsertMany(ctx, missing); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	st := &model.SalinTempel{
		Title:      body.Title,
		Content:    body.Content,
		Author:     body.Author,
		IsNSFW:     body.IsNSFW,
		Tags:       body.Tags,
		LikesBy:    []string{},
		TotalLikes: 0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if st.Tags == nil {
		st.Tags = []string{}
	}
	if err := posts.Insert(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}
