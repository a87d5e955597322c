package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/spachava753/esncontact/addressbook"
	"github.com/spachava753/esncontact/display"
	"github.com/spachava753/esncontact/store"
)

// importedCard is one entry of an import file.
type importedCard struct {
	ID             string `yaml:"id"`
	display.Record `yaml:",inline"`
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [path]",
		Short: "Extract bookId and bookName from an addressbook path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta := addressbook.ParsePath(args[0])
			out := cmd.OutOrStdout()
			if meta.Empty() {
				fmt.Fprintln(out, "not an addressbook path")
				return nil
			}
			fmt.Fprintf(out, "bookId: %s\nbookName: %s\n", meta.BookID(), meta.BookName())
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import [path] [file]",
		Short: "Load contact records from a YAML file into an addressbook",
		Example: `  esncontact import /esn-sabre/esn.php/addressbooks/2222/contacts.json contacts.yaml

contacts.yaml:
  - id: alice
    displayName: Alice
    emails:
      - {type: work, value: alice@example.com}
    tel:
      - {type: home, value: "06.07.08.09.10"}`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := requireAddressbook(args[0])
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[1], err)
			}
			var cards []importedCard
			if err := yaml.Unmarshal(data, &cards); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[1], err)
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			for _, imported := range cards {
				card, err := s.Put(cmd.Context(), meta, store.Card{ID: imported.ID, Record: imported.Record})
				if err != nil {
					return err
				}
				a.logger.Debug("imported card", zap.String("id", card.ID), zap.String("name", card.DisplayName))
			}
			a.logger.Info("import complete",
				zap.String("book", addressbook.Path(a.cfg.PathPrefix, meta.BookID(), meta.BookName())),
				zap.Int("cards", len(cards)))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d card(s)\n", len(cards))
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Render the cached contacts of an addressbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := requireAddressbook(args[0])
			if err != nil {
				return err
			}
			if size <= 0 {
				size = a.cfg.Display.AvatarSize
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			cards, err := s.List(cmd.Context(), meta)
			if err != nil {
				return err
			}

			registry := display.DefaultRegistry(a.cfg.ShellOptions()...)
			a.logger.Debug("rendering addressbook",
				zap.String("book_id", meta.BookID()),
				zap.String("book_name", meta.BookName()),
				zap.String("flavour", registry.Flavour(meta)),
				zap.Int("cards", len(cards)))

			out := cmd.OutOrStdout()
			for _, card := range cards {
				shell := registry.Build(meta, card.Record)
				fmt.Fprintf(out, "%s [%s]\n", shell.DisplayName(), card.ID)
				fmt.Fprintf(out, "  avatar: %s\n", shell.Avatar(size))
				for _, info := range shell.InformationsToDisplay() {
					fmt.Fprintf(out, "  %s: %s (%s, %s)\n", info.ObjectType, info.ID, info.Action, info.Icon)
				}
				fmt.Fprintf(out, "  menu: %s\n", shell.DropDownMenu())
				fmt.Fprintf(out, "  overlay: %s\n", shell.OverlayIcon())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "s", 0, "Avatar size in pixels (default from config)")
	return cmd
}

func newBooksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List cached addressbooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			books, err := s.Books(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, book := range books {
				fmt.Fprintf(out, "%s\t%d\n", addressbook.Path(a.cfg.PathPrefix, book.Meta.BookID(), book.Meta.BookName()), book.Cards)
			}
			return nil
		},
	}
}

func (a *app) openStore() (*store.Store, error) {
	return store.Open(a.cfg.DatabasePath, store.WithLogger(a.logger))
}

func requireAddressbook(path string) (addressbook.Metadata, error) {
	meta := addressbook.ParsePath(path)
	if meta.Empty() {
		return nil, fmt.Errorf("%q is not an addressbook path", path)
	}
	return meta, nil
}
