// lifesci-query issues one-off queries against the upstream APIs from the
// command line, printing results as JSON. It exercises the same clients the
// MCP server serves.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/illumination-k/lifesci-mcp/internal/clients"
	"github.com/illumination-k/lifesci-mcp/internal/config"
	"github.com/illumination-k/lifesci-mcp/internal/logging"
	"github.com/illumination-k/lifesci-mcp/internal/upstream"
	"github.com/illumination-k/lifesci-mcp/internal/upstream/cellosaurus"
	"github.com/illumination-k/lifesci-mcp/internal/upstream/pubmed"
)

var rootCmd = &cobra.Command{
	Use:           "lifesci-query",
	Short:         "Ad-hoc queries against the life-science database APIs",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func defaultClients() (clients.Set, error) {
	return clients.Default(logging.Discard())
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

var cellosaurusCmd = &cobra.Command{
	Use:   "cellosaurus",
	Short: "Cellosaurus cell-line registry",
}

var cellosaurusSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search cell lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := defaultClients()
		if err != nil {
			return err
		}
		fields, _ := cmd.Flags().GetStringSlice("fields")
		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("page-size")
		result, err := set.Cellosaurus.Search(cmd.Context(), cellosaurus.SearchQuery{
			Query:    args[0],
			Fields:   fields,
			Page:     page,
			PageSize: size,
		})
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var cellosaurusGetCmd = &cobra.Command{
	Use:   "get <accession>",
	Short: "Get one cell line by accession",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := defaultClients()
		if err != nil {
			return err
		}
		fields, _ := cmd.Flags().GetStringSlice("fields")
		line, err := set.Cellosaurus.GetCellLine(cmd.Context(), args[0], fields)
		if err != nil {
			return err
		}
		return printJSON(line)
	},
}

var pubmedCmd = &cobra.Command{
	Use:   "pubmed",
	Short: "PubMed articles",
}

var pubmedSearchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search articles by keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := defaultClients()
		if err != nil {
			return err
		}
		retmax, _ := cmd.Flags().GetInt("retmax")
		mesh, _ := cmd.Flags().GetStringSlice("mesh")
		dateStart, _ := cmd.Flags().GetString("date-start")
		dateEnd, _ := cmd.Flags().GetString("date-end")
		openAccess, _ := cmd.Flags().GetBool("open-access")
		result, err := set.PubMed.SearchArticles(cmd.Context(), pubmed.SearchOptions{
			Keyword:    args[0],
			RetMax:     retmax,
			MeshTerms:  mesh,
			DateStart:  dateStart,
			DateEnd:    dateEnd,
			OpenAccess: openAccess,
		})
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var pubmedFetchCmd = &cobra.Command{
	Use:   "fetch <pmid>...",
	Short: "Fetch article metadata by PMID",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := defaultClients()
		if err != nil {
			return err
		}
		result, err := set.PubMed.FetchArticles(cmd.Context(), args)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var pubmedFullTextCmd = &cobra.Command{
	Use:   "fulltext <pmid>",
	Short: "Fetch open-access full text via PMC",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := defaultClients()
		if err != nil {
			return err
		}
		text, err := set.PubMed.FetchFullText(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

var pubtatorCmd = &cobra.Command{
	Use:   "pubtator",
	Short: "PubTator3 annotations",
}

var pubtatorAnnotateCmd = &cobra.Command{
	Use:   "annotate <pmid>...",
	Short: "Annotate articles",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := defaultClients()
		if err != nil {
			return err
		}
		results, err := set.PubTator.Annotate(cmd.Context(), args)
		if err != nil {
			return err
		}
		return printJSON(results)
	},
}

var pubtatorCompleteCmd = &cobra.Command{
	Use:   "complete <keyword>",
	Short: "Resolve a keyword to its normalized concept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := defaultClients()
		if err != nil {
			return err
		}
		concept, _ := cmd.Flags().GetString("concept")
		match, err := set.PubTator.Autocomplete(cmd.Context(), args[0], concept)
		if err != nil {
			return err
		}
		return printJSON(match)
	},
}

var pubchemCmd = &cobra.Command{
	Use:   "pubchem",
	Short: "PubChem compounds",
}

var pubchemSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search compound CIDs by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := defaultClients()
		if err != nil {
			return err
		}
		offset, _ := cmd.Flags().GetInt("offset")
		limit, _ := cmd.Flags().GetInt("limit")
		result, err := set.PubChem.SearchCompounds(cmd.Context(), args[0], upstream.Page{Offset: offset, Limit: limit})
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var pubchemGetCmd = &cobra.Command{
	Use:   "get <cid>",
	Short: "Get compound properties by CID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := defaultClients()
		if err != nil {
			return err
		}
		var cid int
		if _, err := fmt.Sscanf(args[0], "%d", &cid); err != nil {
			return fmt.Errorf("cid must be an integer: %w", err)
		}
		compound, err := set.PubChem.GetCompound(cmd.Context(), cid)
		if err != nil {
			return err
		}
		return printJSON(compound)
	},
}

var entrezCmd = &cobra.Command{
	Use:   "entrez",
	Short: "NCBI Entrez links and raw fetch",
}

var entrezLinksCmd = &cobra.Command{
	Use:   "links <id>...",
	Short: "Discover links between database records",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := defaultClients()
		if err != nil {
			return err
		}
		dbFrom, _ := cmd.Flags().GetString("from")
		dbTo, _ := cmd.Flags().GetString("to")
		result, err := set.Entrez.Links(cmd.Context(), args, dbFrom, dbTo)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var entrezFetchCmd = &cobra.Command{
	Use:   "fetch <id>...",
	Short: "Fetch raw records from an Entrez database",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := defaultClients()
		if err != nil {
			return err
		}
		db, _ := cmd.Flags().GetString("db")
		retmode, _ := cmd.Flags().GetString("retmode")
		rettype, _ := cmd.Flags().GetString("rettype")
		raw, err := set.Entrez.Fetch(cmd.Context(), args, db, retmode, rettype)
		if err != nil {
			return err
		}
		fmt.Println(raw)
		return nil
	},
}

func main() {
	cellosaurusSearchCmd.Flags().StringSlice("fields", nil, "restrict returned fields")
	cellosaurusSearchCmd.Flags().Int("page", 0, "1-based result page")
	cellosaurusSearchCmd.Flags().Int("page-size", 0, "results per page (max 100)")
	cellosaurusGetCmd.Flags().StringSlice("fields", nil, "restrict returned fields")
	cellosaurusCmd.AddCommand(cellosaurusSearchCmd, cellosaurusGetCmd)

	pubmedSearchCmd.Flags().Int("retmax", 0, "maximum results (max 200)")
	pubmedSearchCmd.Flags().StringSlice("mesh", nil, "MeSH terms to filter by")
	pubmedSearchCmd.Flags().String("date-start", "", "publication date start (YYYY/MM/DD)")
	pubmedSearchCmd.Flags().String("date-end", "", "publication date end (YYYY/MM/DD)")
	pubmedSearchCmd.Flags().Bool("open-access", false, "only open-access articles")
	pubmedCmd.AddCommand(pubmedSearchCmd, pubmedFetchCmd, pubmedFullTextCmd)

	pubtatorCompleteCmd.Flags().String("concept", "", "restrict to gene, disease, or chemical")
	pubtatorCmd.AddCommand(pubtatorAnnotateCmd, pubtatorCompleteCmd)

	pubchemSearchCmd.Flags().Int("offset", 0, "result offset")
	pubchemSearchCmd.Flags().Int("limit", 0, "maximum CIDs (max 100)")
	pubchemCmd.AddCommand(pubchemSearchCmd, pubchemGetCmd)

	entrezLinksCmd.Flags().String("from", "pubmed", "source database")
	entrezLinksCmd.Flags().String("to", "gene", "target database")
	entrezFetchCmd.Flags().String("db", "pubmed", "database to fetch from")
	entrezFetchCmd.Flags().String("retmode", "xml", "response format")
	entrezFetchCmd.Flags().String("rettype", "", "record type")
	entrezCmd.AddCommand(entrezLinksCmd, entrezFetchCmd)

	rootCmd.AddCommand(cellosaurusCmd, pubmedCmd, pubtatorCmd, pubchemCmd, entrezCmd)
	config.Init(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
