package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shrawan-shakya/shakya-gallery-sub000/catalog"
	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
)

//go:embed testdata/conformance.yaml
var defaultFixtures []byte

// conformanceFixtures is a catalog, newest first, and the filter cases to run over it
type conformanceFixtures struct {
	Artworks []models.Artwork  `yaml:"artworks"`
	Cases    []conformanceCase `yaml:"cases"`
}

type conformanceCase struct {
	Name       string   `yaml:"name"`
	Search     string   `yaml:"search"`
	Categories []string `yaml:"categories"`
	Status     string   `yaml:"status"`
	Sort       string   `yaml:"sort"`
	Want       []string `yaml:"want"`
}

func (c conformanceCase) options() models.FilterOptions {
	return models.ArtworkQuery{Q: c.Search, Category: c.Categories, Status: c.Status, Sort: c.Sort}.FilterOptions()
}

func loadFixtures(path string) (*conformanceFixtures, error) {
	data := defaultFixtures
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
		data = b
	}

	var fx conformanceFixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &fx, nil
}

func newConformanceCommand() *cobra.Command {
	var fixturesPath string
	var live bool

	cmd := &cobra.Command{
		Use:   "conformance",
		Short: "Check the in-memory filter engine against fixture expectations",
		Long: `Runs every fixture case through the in-memory filter engine and prints the
compiled GROQ query for each one. Cases with a "want" list must match exactly.

With --live the cases also run against the configured Sanity dataset, and the
IDs returned by the query are compared with the in-memory result over the
full published catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := loadFixtures(fixturesPath)
			if err != nil {
				return err
			}

			var remote catalog.ContentQuerier
			if live {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				remote = services.NewSanityClient(services.SanityOptions{
					ProjectID:  cfg.SanityProjectID,
					Dataset:    cfg.SanityDataset,
					APIVersion: cfg.SanityAPIVersion,
					Token:      cfg.SanityToken,
					UseCDN:     cfg.SanityUseCDN,
				})
			}

			failures, err := runConformance(cmd.Context(), cmd.OutOrStdout(), fx, remote)
			if err != nil {
				return err
			}
			if failures > 0 {
				return fmt.Errorf("%d conformance case(s) failed", failures)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fixturesPath, "fixtures", "f", "", "YAML fixtures (default: built-in gallery sample)")
	cmd.Flags().BoolVar(&live, "live", false, "Also compare against the Sanity dataset from the environment")
	return cmd
}

// runConformance returns the number of failing cases
func runConformance(ctx context.Context, out io.Writer, fx *conformanceFixtures, remote catalog.ContentQuerier) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var liveCatalog []models.Artwork
	if remote != nil {
		var err error
		liveCatalog, err = catalog.Fetch(ctx, remote, catalog.Spec{Sort: models.SortNewest})
		if err != nil {
			return 0, fmt.Errorf("fetch live catalog: %w", err)
		}
	}

	failures := 0
	for _, c := range fx.Cases {
		spec := catalog.FromServerOptions(c.options())
		q, err := catalog.CompileGROQ(spec)
		if err != nil {
			return failures, fmt.Errorf("%s: %w", c.Name, err)
		}

		got := artworkIDs(catalog.Apply(fx.Artworks, spec))
		ok := c.Want == nil || slices.Equal(got, c.Want)

		fmt.Fprintf(out, "%s %s\n", mark(ok), c.Name)
		fmt.Fprintf(out, "    groq:   %s\n", compact(q.Query))
		fmt.Fprintf(out, "    params: %v\n", q.Params)
		fmt.Fprintf(out, "    memory: %v\n", got)
		if !ok {
			fmt.Fprintf(out, "    want:   %v\n", c.Want)
			failures++
		}

		if remote != nil {
			remoteIDs, err := fetchIDs(ctx, remote, spec)
			if err != nil {
				return failures, fmt.Errorf("%s: %w", c.Name, err)
			}
			localIDs := artworkIDs(catalog.Apply(liveCatalog, spec))
			liveOK := slices.Equal(remoteIDs, localIDs)
			fmt.Fprintf(out, "    %s live: sanity=%v memory=%v\n", mark(liveOK), remoteIDs, localIDs)
			if !liveOK {
				failures++
			}
		}
	}
	return failures, nil
}

func fetchIDs(ctx context.Context, q catalog.ContentQuerier, spec catalog.Spec) ([]string, error) {
	artworks, err := catalog.Fetch(ctx, q, spec)
	if err != nil {
		return nil, err
	}
	return artworkIDs(artworks), nil
}

func artworkIDs(artworks []models.Artwork) []string {
	ids := make([]string, 0, len(artworks))
	for _, a := range artworks {
		ids = append(ids, a.ID)
	}
	return ids
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
