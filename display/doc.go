// Package display adapts raw contact records for rendering.
//
// A Shell wraps one Record and exposes the derived presentation fields a
// contact list template needs: avatar URL, display name, the preferred email
// and phone entries, the overlay visibility class and the context-menu token.
// Shells never fail; absent record fields fall back to defaults.
//
// Avatar delegates two decisions to injected capabilities:
//
//   - TextAvatarClassifier: is the photo a generated text avatar?
//   - URLUpdater: rewrite the size query parameter of a text avatar URL.
//
// ESNTextAvatars and UpdateURLParameter are the defaults.
//
// # Composition Examples
//
// 1) Render one record:
//
//	shell := display.New(display.Record{
//		DisplayName: "Contact OpenPaas",
//		Emails:      []display.LabeledValue{{Type: "work", Value: "perso@linagora.com"}},
//	})
//	_ = shell.Avatar(256)
//	for _, info := range shell.InformationsToDisplay() {
//		_ = info.Action // mailto:perso@linagora.com
//	}
//
// 2) Pick a shell flavour per addressbook:
//
//	registry := display.DefaultRegistry(display.WithDefaultAvatar(cfg.Display.DefaultAvatar))
//	meta := addressbook.ParsePath(path)
//	shell = registry.Build(meta, record)
package display
