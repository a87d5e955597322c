package display_test

import (
	"context"
	"fmt"

	"github.com/spachava753/esncontact/addressbook"
	"github.com/spachava753/esncontact/display"
	"github.com/spachava753/esncontact/store"
)

func composeRenderOneRecord() []string {
	shell := display.New(display.Record{
		DisplayName: "Contact OpenPaas",
		Emails: []display.LabeledValue{{
			Type:  "work",
			Value: "perso@linagora.com",
		}},
	})

	lines := []string{shell.DisplayName(), shell.Avatar(256)}
	for _, info := range shell.InformationsToDisplay() {
		lines = append(lines, info.Action)
	}
	return lines
}

func composeRenderCachedAddressbook(ctx context.Context, s *store.Store, path string) ([]string, error) {
	meta := addressbook.ParsePath(path)
	if meta.Empty() {
		return nil, fmt.Errorf("%q is not an addressbook path", path)
	}

	cards, err := s.List(ctx, meta)
	if err != nil {
		return nil, err
	}

	registry := display.DefaultRegistry(display.WithDefaultAvatar("/images/blank.png"))
	names := make([]string, 0, len(cards))
	for _, card := range cards {
		shell := registry.Build(meta, card.Record)
		names = append(names, fmt.Sprintf("%s (%s)", shell.DisplayName(), shell.DropDownMenu()))
	}
	return names, nil
}

func composeCustomCapabilities() string {
	shell := display.New(display.Record{Photo: "https://cdn.example/avatars/42.png"},
		display.WithTextAvatarClassifier(display.TextAvatarFunc(func(display.Record) bool { return true })),
		display.WithURLUpdater(display.URLUpdaterFunc(display.UpdateURLParameter)),
	)
	return shell.Avatar(64)
}
