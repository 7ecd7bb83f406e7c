package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"DeskScene/shared/config"
	"DeskScene/shared/scene"
	"DeskScene/shared/scenedb"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd monta a árvore de comandos. O banco padrão vem do config do visualizador.
func newRootCmd() *cobra.Command {
	var dbPath string

	root := &cobra.Command{
		Use:          "cenatool",
		Short:        "Ferramentas para as cenas do DeskScene",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dbPath, "db", config.Load().SceneDB, "Banco de cenas salvas")

	openStore := func() (*scenedb.Store, error) {
		return scenedb.Open(dbPath)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Lista as cenas embutidas",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, name := range scene.BuiltinNames() {
					s, _ := scene.Builtin(name)
					fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s (%d objetos)\n", name, s.Title, len(s.Objects))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <cena|arquivo>",
			Short: "Mostra o resumo de uma cena",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := resolveScene(args[0])
				if err != nil {
					return err
				}
				printSummary(cmd, s)
				return nil
			},
		},
		&cobra.Command{
			Use:   "validate <arquivo>",
			Short: "Valida um arquivo de cena",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := scene.Load(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[OK] %s: cena '%s' válida (%d objetos)\n", args[0], s.Name, len(s.Objects))
				return nil
			},
		},
		&cobra.Command{
			Use:   "export <cena> <arquivo>",
			Short: "Grava uma cena embutida em YAML ou JSON",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := scene.Builtin(args[0])
				if err != nil {
					return err
				}
				if err := scene.Save(s, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cena '%s' exportada para %s\n", s.Name, args[1])
				return nil
			},
		},
		&cobra.Command{
			Use:   "save <cena|arquivo>",
			Short: "Salva uma cena no banco",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := resolveScene(args[0])
				if err != nil {
					return err
				}
				store, err := openStore()
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.SaveScene(s); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cena '%s' salva em %s\n", s.Name, store.Path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "saved",
			Short: "Lista as cenas salvas no banco",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := openStore()
				if err != nil {
					return err
				}
				defer store.Close()
				infos, err := store.ListScenes()
				if err != nil {
					return err
				}
				if len(infos) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma cena salva.")
					return nil
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "NOME\tTÍTULO\tOBJETOS\tATUALIZADA")
				for _, info := range infos {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", info.Name, info.Title, info.Objects, info.UpdatedAt.Format("2006-01-02 15:04"))
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "delete <nome>",
			Short: "Remove uma cena salva no banco",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := openStore()
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.DeleteScene(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cena '%s' removida\n", args[0])
				return nil
			},
		},
	)

	return root
}

// resolveScene aceita o nome de uma cena embutida ou o caminho de um arquivo de cena.
func resolveScene(arg string) (*scene.Scene, error) {
	if _, err := scene.FormatFromPath(arg); err == nil {
		return scene.Load(arg)
	}
	if strings.ContainsRune(arg, filepath.Separator) {
		return nil, fmt.Errorf("arquivo de cena sem extensão conhecida: %s", arg)
	}
	return scene.Builtin(arg)
}

func printSummary(cmd *cobra.Command, s *scene.Scene) {
	out := cmd.OutOrStdout()
	title := s.Title
	if title == "" {
		title = s.Name
	}
	fmt.Fprintf(out, "Cena: %s (%s)\n", title, s.Name)
	fmt.Fprintf(out, "Objetos: %d | Texturas: %d | Materiais: %d | Luzes: %d\n",
		len(s.Objects), len(s.Textures), len(s.Materials), len(s.Lights))

	shapes := make([]string, 0)
	for _, sh := range s.Shapes() {
		shapes = append(shapes, string(sh))
	}
	fmt.Fprintf(out, "Formas: %s\n", strings.Join(shapes, ", "))

	counts := make(map[string]int)
	for _, o := range s.Objects {
		counts[o.Group]++
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GRUPO\tOBJETOS")
	for _, g := range s.Groups() {
		fmt.Fprintf(w, "%s\t%d\n", g, counts[g])
	}
	if n := counts[""]; n > 0 {
		fmt.Fprintf(w, "(sem grupo)\t%d\n", n)
	}
	w.Flush()
}
