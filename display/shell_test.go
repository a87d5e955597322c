package display

import (
	"testing"

	"github.com/nalgeon/be"
)

func checkShell(t *testing.T, shell *Shell, record Record) {
	t.Helper()
	be.Equal(t, shell.DefaultAvatar(), "/contact/images/default_avatar.png")
	be.Equal(t, shell.DisplayName(), record.DisplayName)
	be.True(t, shell.IsWritable())
	be.Equal(t, shell.OverlayIcon(), "ng-hide")
	be.Equal(t, shell.InformationsToDisplay(), []Info{
		{
			ObjectType: ObjectTypeEmail,
			ID:         record.Emails[0].Value,
			Icon:       "mdi-email-outline",
			Action:     "mailto:" + record.Emails[0].Value,
		},
		{
			ObjectType: ObjectTypePhone,
			ID:         record.Tel[0].Value,
			Icon:       "mdi-phone",
			Action:     "tel:" + record.Tel[0].Value,
		},
	})
	be.Equal(t, shell.DropDownMenu(), "default-menu-items")
}

func TestShellDefaults(t *testing.T) {
	record := Record{
		DisplayName: "Contact OpenPaas",
		Emails:      []LabeledValue{{Type: "work", Value: "perso@linagora.com"}},
		Tel:         []LabeledValue{{Type: "work", Value: "01.02.03.04.05"}},
	}
	checkShell(t, New(record), record)
}

func TestShellSingleEntryOfAnyType(t *testing.T) {
	record := Record{
		DisplayName: "Contact OpenPaas",
		Emails:      []LabeledValue{{Type: "home", Value: "perso@home.com"}},
		Tel:         []LabeledValue{{Type: "mobile", Value: "06.07.08.09.10"}},
	}
	checkShell(t, New(record), record)
}

func TestShellPrefersWorkEntries(t *testing.T) {
	shell := New(Record{
		DisplayName: "Contact OpenPaas",
		Emails: []LabeledValue{
			{Type: "home", Value: "perso@home.com"},
			{Type: "work", Value: "perso@linagora.com"},
		},
		Tel: []LabeledValue{
			{Type: "home", Value: "06.07.08.09.10"},
			{Type: "work", Value: "01.02.03.04.05"},
		},
	})

	be.Equal(t, shell.InformationsToDisplay(), []Info{
		{ObjectType: ObjectTypeEmail, ID: "perso@linagora.com", Icon: IconEmail, Action: "mailto:perso@linagora.com"},
		{ObjectType: ObjectTypePhone, ID: "01.02.03.04.05", Icon: IconPhone, Action: "tel:01.02.03.04.05"},
	})
}

func TestShellFallsBackToFirstEntry(t *testing.T) {
	shell := New(Record{
		Emails: []LabeledValue{
			{Type: "home", Value: "first@home.com"},
			{Type: "other", Value: "second@other.com"},
		},
	})

	infos := shell.InformationsToDisplay()
	be.Equal(t, len(infos), 1)
	be.Equal(t, infos[0].ID, "first@home.com")
	be.Equal(t, infos[0].ObjectType, ObjectTypeEmail)
}

func TestShellOmitsMissingInformations(t *testing.T) {
	shell := New(Record{DisplayName: "Nobody"})
	be.Equal(t, len(shell.InformationsToDisplay()), 0)
	be.Equal(t, shell.Avatar(64), DefaultAvatarPath)
	be.True(t, shell.IsWritable())

	phoneOnly := New(Record{Tel: []LabeledValue{{Value: "0102"}}})
	infos := phoneOnly.InformationsToDisplay()
	be.Equal(t, len(infos), 1)
	be.Equal(t, infos[0].Action, "tel:0102")
}

func TestShellWritable(t *testing.T) {
	readOnly := false
	shell := New(Record{Writable: &readOnly})
	be.True(t, !shell.IsWritable())
	be.Equal(t, shell.OverlayIcon(), OverlayShown)

	forced := New(Record{}, WithWritable(false))
	be.True(t, !forced.IsWritable())

	writable := true
	be.True(t, New(Record{Writable: &writable}).IsWritable())
}

func TestShellReflectsRecordWithoutCaching(t *testing.T) {
	record := Record{Emails: []LabeledValue{{Type: "work", Value: "a@example.com"}}}
	shell := New(record)
	be.Equal(t, shell.InformationsToDisplay()[0].ID, "a@example.com")

	record.Emails[0].Value = "b@example.com"
	be.Equal(t, shell.InformationsToDisplay()[0].ID, "b@example.com")
}

func TestShellRecord(t *testing.T) {
	record := Record{DisplayName: "Contact OpenPaas", Photo: "/p.png"}
	shell := New(record)
	be.Equal(t, shell.Record().DisplayName, "Contact OpenPaas")
	be.Equal(t, shell.Record().Photo, "/p.png")
}

func TestAvatarBlankPhotoUsesDefault(t *testing.T) {
	shell := New(Record{Photo: "   "},
		WithTextAvatarClassifier(TextAvatarFunc(func(Record) bool {
			t.Fatal("classifier must not be called for blank photos")
			return false
		})),
	)
	be.Equal(t, shell.Avatar(64), DefaultAvatarPath)
}

func TestShellMenuOption(t *testing.T) {
	be.Equal(t, New(Record{}, WithMenu("custom-menu")).DropDownMenu(), "custom-menu")
	be.Equal(t, New(Record{}, WithMenu("")).DropDownMenu(), DefaultMenu)
}

func TestAvatarTextAvatarRewritesSize(t *testing.T) {
	record := Record{
		DisplayName: "Contact OpenPaas",
		Photo:       "http://linagora.com/user/text_avatar.png",
	}

	var (
		calls    int
		gotURL   string
		gotKey   string
		gotValue any
	)
	shell := New(record,
		WithTextAvatarClassifier(TextAvatarFunc(func(Record) bool { return true })),
		WithURLUpdater(URLUpdaterFunc(func(rawURL string, key string, value any) string {
			calls++
			gotURL, gotKey, gotValue = rawURL, key, value
			return "updated"
		})),
	)

	be.Equal(t, shell.Avatar(256), "updated")
	be.Equal(t, calls, 1)
	be.Equal(t, gotURL, record.Photo)
	be.Equal(t, gotKey, "size")
	be.Equal(t, gotValue, any(256))
}

func TestAvatarKeepsUploadedPhoto(t *testing.T) {
	record := Record{
		DisplayName: "Contact OpenPaas",
		Photo:       "http://linagora.com/user/avatar.png",
	}
	shell := New(record,
		WithTextAvatarClassifier(TextAvatarFunc(func(Record) bool { return false })),
		WithURLUpdater(URLUpdaterFunc(func(string, string, any) string {
			t.Fatal("updater must not be called for uploaded photos")
			return ""
		})),
	)

	be.Equal(t, shell.Avatar(256), record.Photo)
}

func TestAvatarDefaultWithoutPhoto(t *testing.T) {
	const configured = "http://linagora.com/user/default_avatar.png"
	shell := New(Record{DisplayName: "Contact OpenPaas"},
		WithTextAvatarClassifier(TextAvatarFunc(func(Record) bool { return false })),
		WithDefaultAvatar(configured),
	)

	be.Equal(t, shell.Avatar(256), configured)
	be.Equal(t, shell.DefaultAvatar(), DefaultAvatarPath)
}

func TestAvatarWithDefaultCapabilities(t *testing.T) {
	shell := New(Record{Photo: "/contact/api/contacts/2222/3333/card-1/avatar?size=32"})
	be.Equal(t, shell.Avatar(128), "/contact/api/contacts/2222/3333/card-1/avatar?size=128")
}
