package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"gems-assistant/internal/intent"
	"gems-assistant/internal/model"
	"gems-assistant/internal/resolver/reply"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Trims And Drops Empty Entries", func(t *testing.T) {
		uc := newUseCase(t)
		out, err := uc.Create(ctx, intent.CreateInput{
			Tag:       "  fees ",
			Patterns:  []string{" tuition fees ", ""},
			Responses: []string{"Fees are 1000.", "   "},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent.Tag != "fees" {
			t.Errorf("expected trimmed tag, got %q", out.Intent.Tag)
		}
		if !reflect.DeepEqual(out.Intent.Patterns, []string{"tuition fees"}) {
			t.Errorf("unexpected patterns %v", out.Intent.Patterns)
		}
		if !reflect.DeepEqual(out.Intent.Responses, []string{"Fees are 1000."}) {
			t.Errorf("unexpected responses %v", out.Intent.Responses)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		uc := newUseCase(t)
		if _, err := uc.Create(ctx, intent.CreateInput{Tag: "  ", Responses: []string{"x"}}); !errors.Is(err, intent.ErrTagRequired) {
			t.Errorf("expected ErrTagRequired, got %v", err)
		}
		if _, err := uc.Create(ctx, intent.CreateInput{Tag: "fees", Responses: []string{" "}}); !errors.Is(err, intent.ErrNoResponses) {
			t.Errorf("expected ErrNoResponses, got %v", err)
		}
	})

	t.Run("Duplicate Tag", func(t *testing.T) {
		uc := newUseCase(t)
		in := intent.CreateInput{Tag: "fees", Responses: []string{"x"}}
		if _, err := uc.Create(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Create(ctx, in); !errors.Is(err, intent.ErrDuplicateTag) {
			t.Errorf("expected ErrDuplicateTag, got %v", err)
		}
	})
}

func TestListDetailUpdateDelete(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	var ids = map[string]string{}
	for _, tag := range []string{"hostel", "fees", "faq_fees"} {
		out, err := uc.Create(ctx, intent.CreateInput{Tag: tag, Responses: []string{tag + " answer"}})
		if err != nil {
			t.Fatalf("create %s: %v", tag, err)
		}
		ids[tag] = out.Intent.ID
	}

	t.Run("List Ordered By Tag", func(t *testing.T) {
		out, err := uc.List(ctx, intent.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var tags []string
		for _, it := range out.Intents {
			tags = append(tags, it.Tag)
		}
		if !reflect.DeepEqual(tags, []string{"faq_fees", "fees", "hostel"}) {
			t.Errorf("unexpected order %v", tags)
		}
		if out.Total != 3 {
			t.Errorf("expected total 3, got %d", out.Total)
		}
	})

	t.Run("List Fuzzy Query", func(t *testing.T) {
		out, err := uc.List(ctx, intent.ListInput{Query: "fes"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 2 {
			t.Fatalf("expected 2 matches, got %d", out.Total)
		}
		for _, it := range out.Intents {
			if it.Tag == "hostel" {
				t.Errorf("hostel should not match %q", "fes")
			}
		}
	})

	t.Run("Detail Not Found", func(t *testing.T) {
		if _, err := uc.Detail(ctx, "missing"); !errors.Is(err, intent.ErrIntentNotFound) {
			t.Errorf("expected ErrIntentNotFound, got %v", err)
		}
	})

	t.Run("Update", func(t *testing.T) {
		out, err := uc.Update(ctx, intent.UpdateInput{
			ID:        ids["fees"],
			Tag:       "fees",
			Patterns:  []string{"how much"},
			Responses: []string{"It costs 1000."},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(out.Intent.Responses, []string{"It costs 1000."}) {
			t.Errorf("unexpected responses %v", out.Intent.Responses)
		}
	})

	t.Run("Update Duplicate Tag", func(t *testing.T) {
		_, err := uc.Update(ctx, intent.UpdateInput{ID: ids["fees"], Tag: "hostel", Responses: []string{"x"}})
		if !errors.Is(err, intent.ErrDuplicateTag) {
			t.Errorf("expected ErrDuplicateTag, got %v", err)
		}
	})

	t.Run("Update Not Found", func(t *testing.T) {
		_, err := uc.Update(ctx, intent.UpdateInput{ID: "missing", Tag: "x", Responses: []string{"x"}})
		if !errors.Is(err, intent.ErrIntentNotFound) {
			t.Errorf("expected ErrIntentNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := uc.Delete(ctx, ids["hostel"]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Delete(ctx, ids["hostel"]); !errors.Is(err, intent.ErrIntentNotFound) {
			t.Errorf("expected ErrIntentNotFound on second delete, got %v", err)
		}
	})
}

func TestSmart(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	in := intent.SmartInput{
		Topic:     "Hostel Fees",
		Details:   "rooms, mess",
		Responses: []string{" Hostel costs 500. ", ""},
	}

	first, err := uc.CreateSmart(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Tag != "hostel_fees" {
		t.Errorf("expected hostel_fees, got %q", first.Tag)
	}
	if first.Patterns[0] != "Hostel Fees" || first.Patterns[len(first.Patterns)-1] != "Hostel Fees mess" {
		t.Errorf("unexpected patterns %v", first.Patterns)
	}
	if !reflect.DeepEqual(first.Intent.Responses, []string{"Hostel costs 500."}) {
		t.Errorf("unexpected responses %v", first.Intent.Responses)
	}

	second, err := uc.CreateSmart(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third, err := uc.CreateSmart(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Tag != "hostel_fees_2" || third.Tag != "hostel_fees_3" {
		t.Errorf("expected suffixed tags, got %q and %q", second.Tag, third.Tag)
	}

	t.Run("Update Keeps Own Tag", func(t *testing.T) {
		out, err := uc.UpdateSmart(ctx, intent.SmartInput{
			ID:        first.Intent.ID,
			Topic:     "Hostel Fees",
			Details:   "wifi",
			Responses: []string{"Updated."},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tag != "hostel_fees" {
			t.Errorf("expected hostel_fees, got %q", out.Tag)
		}
		if out.Intent.Patterns[len(out.Intent.Patterns)-1] != "Hostel Fees wifi" {
			t.Errorf("unexpected patterns %v", out.Intent.Patterns)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		cases := []struct {
			in   intent.SmartInput
			want error
		}{
			{intent.SmartInput{Details: "a", Responses: []string{"x"}}, intent.ErrTopicRequired},
			{intent.SmartInput{Topic: "a", Responses: []string{"x"}}, intent.ErrDetailsRequired},
			{intent.SmartInput{Topic: "a", Details: "b", Responses: []string{" "}}, intent.ErrNoResponses},
		}
		for _, c := range cases {
			if _, err := uc.CreateSmart(ctx, c.in); !errors.Is(err, c.want) {
				t.Errorf("expected %v, got %v", c.want, err)
			}
		}
	})

	t.Run("Update Not Found", func(t *testing.T) {
		_, err := uc.UpdateSmart(ctx, intent.SmartInput{ID: "missing", Topic: "a", Details: "b", Responses: []string{"x"}})
		if !errors.Is(err, intent.ErrIntentNotFound) {
			t.Errorf("expected ErrIntentNotFound, got %v", err)
		}
	})
}

func TestPreview(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	created, err := uc.Create(ctx, intent.CreateInput{Tag: "fees", Responses: []string{"first", "second"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := uc.Preview(ctx, created.Intent.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Preview != "first" {
		t.Errorf("expected first, got %q", out.Preview)
	}

	// Sync can store an intent without responses.
	if _, err := uc.Sync(ctx, intent.SyncInput{Intents: []model.Intent{{Tag: "silent"}}}); err != nil {
		t.Fatalf("sync: %v", err)
	}
	list, err := uc.List(ctx, intent.ListInput{Query: "silent"})
	if err != nil || list.Total != 1 {
		t.Fatalf("expected silent intent, got %v (err %v)", list.Intents, err)
	}
	out, err = uc.Preview(ctx, list.Intents[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Preview != reply.NoPreview {
		t.Errorf("expected %q, got %q", reply.NoPreview, out.Preview)
	}

	if _, err := uc.Preview(ctx, "missing"); !errors.Is(err, intent.ErrIntentNotFound) {
		t.Errorf("expected ErrIntentNotFound, got %v", err)
	}
}

func TestSync(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	if _, err := uc.Create(ctx, intent.CreateInput{Tag: "greeting", Responses: []string{"edited by admin"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	source := []model.Intent{
		{Tag: "greeting", Patterns: []string{"hi"}, Responses: []string{"Hello!"}},
		{Tag: "goodbye", Patterns: []string{"bye"}, Responses: []string{"Bye!"}},
		{Tag: "  ", Patterns: []string{"x"}, Responses: []string{"x"}},
	}

	t.Run("Adds Missing Only", func(t *testing.T) {
		out, err := uc.Sync(ctx, intent.SyncInput{Intents: source})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Added != 1 || out.Updated != 0 || out.Skipped != 2 {
			t.Errorf("unexpected counts %+v", out)
		}

		list, _ := uc.List(ctx, intent.ListInput{Query: "greeting"})
		if list.Intents[0].Responses[0] != "edited by admin" {
			t.Errorf("existing intent must not be overwritten, got %v", list.Intents[0].Responses)
		}
	})

	t.Run("Update Existing", func(t *testing.T) {
		out, err := uc.Sync(ctx, intent.SyncInput{Intents: source, UpdateExisting: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Added != 0 || out.Updated != 2 || out.Skipped != 1 {
			t.Errorf("unexpected counts %+v", out)
		}

		list, _ := uc.List(ctx, intent.ListInput{Query: "greeting"})
		if list.Intents[0].Responses[0] != "Hello!" {
			t.Errorf("expected overwritten responses, got %v", list.Intents[0].Responses)
		}
	})
	t.Run("Skips Intents Without Responses", func(t *testing.T) {
		out, err := uc.Sync(ctx, intent.SyncInput{
			Intents: []model.Intent{
				{Tag: "broken", Patterns: []string{"hello"}, Responses: []string{"  ", ""}},
				{Tag: "goodbye", Patterns: []string{"bye"}, Responses: nil},
			},
			UpdateExisting: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Added != 0 || out.Updated != 0 || out.Skipped != 2 {
			t.Errorf("unexpected counts %+v", out)
		}

		list, _ := uc.List(ctx, intent.ListInput{})
		for _, it := range list.Intents {
			if it.Tag == "broken" {
				t.Errorf("intent without responses was stored: %+v", it)
			}
			if len(it.Responses) == 0 {
				t.Errorf("stored intent %q has no responses", it.Tag)
			}
		}
	})
}
