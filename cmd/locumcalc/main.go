package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jmwhitney/locumcalc/internal/calculation"
	"github.com/jmwhitney/locumcalc/internal/compare"
	"github.com/jmwhitney/locumcalc/internal/config"
	"github.com/jmwhitney/locumcalc/internal/domain"
	"github.com/jmwhitney/locumcalc/internal/location"
	"github.com/jmwhitney/locumcalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "locumcalc",
	Short: "Locum tenens contract compensation calculator",
	Long:  "Compensation and tax calculator for locum tenens contracts: gross/net breakdown, progressive federal and state taxes, and multi-state comparison",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate the full compensation breakdown for a contract",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		contract, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		result, err := calculation.NewContractEngine().Calculate(*contract)
		if err != nil {
			log.Fatal(err)
		}

		formatName, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			log.Fatalf("unknown output format %q", formatName)
		}
		data, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(data)
	},
}

var taxesCmd = &cobra.Command{
	Use:   "taxes",
	Short: "Compute an annual tax breakdown from ad-hoc figures",
	Run: func(cmd *cobra.Command, args []string) {
		incomeStr, _ := cmd.Flags().GetString("income")
		income, err := decimal.NewFromString(incomeStr)
		if err != nil || income.LessThan(decimal.Zero) {
			log.Fatalf("invalid --income %q", incomeStr)
		}
		stateStr, _ := cmd.Flags().GetString("state")
		jurisdiction, err := domain.ParseJurisdiction(stateStr)
		if err != nil {
			log.Fatal(err)
		}
		statusStr, _ := cmd.Flags().GetString("status")
		status, err := domain.ParseFilingStatus(statusStr)
		if err != nil {
			log.Fatal(err)
		}
		exemptions, _ := cmd.Flags().GetInt("exemptions")
		resident, _ := cmd.Flags().GetBool("resident")

		tc := calculation.NewTaxCalculator2025()
		breakdown := tc.AnnualTaxes(domain.TaxInput{
			GrossIncome:  income,
			Jurisdiction: jurisdiction,
			FilingStatus: status,
			Exemptions:   exemptions,
			IsResident:   resident,
		})

		fmt.Printf("Tax year %d, %s resident of %s\n", tc.Year, status, jurisdiction)
		fmt.Printf("  Federal:          $%s\n", breakdown.FederalTax.StringFixed(2))
		fmt.Printf("  State:            $%s\n", breakdown.StateTax.StringFixed(2))
		fmt.Printf("  Social Security:  $%s\n", breakdown.SocialSecurity.StringFixed(2))
		fmt.Printf("  Medicare:         $%s\n", breakdown.Medicare.StringFixed(2))
		fmt.Printf("  State disability: $%s\n", breakdown.StateDisability.StringFixed(2))
		fmt.Printf("  Total:            $%s\n", breakdown.Total.StringFixed(2))
		fmt.Printf("  Effective rate:   %s%%\n", breakdown.EffectiveRate.StringFixed(1))
		fmt.Printf("  Marginal rate:    %s%%\n", breakdown.MarginalRate.StringFixed(1))

		priorStr, _ := cmd.Flags().GetString("prior-year-tax")
		if priorStr != "" {
			prior, err := decimal.NewFromString(priorStr)
			if err != nil {
				log.Fatalf("invalid --prior-year-tax %q", priorStr)
			}
			payments := tc.EstimatedQuarterlyPayments(breakdown.Total, prior)
			fmt.Printf("Estimated quarterly payments\n")
			fmt.Printf("  Plain quarterly:  $%s\n", payments.Quarterly.StringFixed(2))
			fmt.Printf("  Safe harbor:      $%s\n", payments.SafeHarborQuarterly.StringFixed(2))
			fmt.Printf("  Recommended:      $%s\n", payments.Recommended.StringFixed(2))
		}
	},
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List or recommend jurisdictions by cost, quality of life, and demand",
	Run: func(cmd *cobra.Command, args []string) {
		criteria := location.Criteria{}
		if v, _ := cmd.Flags().GetFloat64("max-col"); v > 0 {
			criteria.MaxCostOfLiving = decimal.NewFromFloat(v)
		}
		if v, _ := cmd.Flags().GetFloat64("min-qol"); v > 0 {
			criteria.MinQualityOfLife = decimal.NewFromFloat(v)
		}
		if v, _ := cmd.Flags().GetString("demand"); v != "" {
			criteria.RequiredDemand = location.DemandLevel(v)
		}
		if v, _ := cmd.Flags().GetBool("no-income-tax"); v {
			criteria.PreferNoIncomeTax = true
		}
		if v, _ := cmd.Flags().GetFloat64("max-commute"); v > 0 {
			criteria.MaxCommuteMinutes = decimal.NewFromFloat(v)
		}

		fmt.Printf("%-6s %-6s %-8s %-6s %-10s %s\n", "State", "Score", "COL", "QoL", "Demand", "Income tax")
		for _, j := range location.Recommendations(criteria) {
			f := location.Facts(j)
			tax := "yes"
			if !location.HasIncomeTax(j) {
				tax = "no"
			}
			fmt.Printf("%-6s %-6d %-8s %-6s %-10s %s\n",
				j, location.Score(j), f.CostOfLivingIndex.StringFixed(0),
				f.QualityOfLife.StringFixed(1), f.Demand, tax)
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare one contract across several states",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		contract, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		statesStr, _ := cmd.Flags().GetString("states")
		var jurisdictions []domain.Jurisdiction
		if statesStr == "" {
			jurisdictions = domain.AllJurisdictions
		} else {
			for _, s := range strings.Split(statesStr, ",") {
				j, err := domain.ParseJurisdiction(s)
				if err != nil {
					log.Fatal(err)
				}
				jurisdictions = append(jurisdictions, j)
			}
		}

		comparison, err := compare.AcrossJurisdictions(calculation.NewContractEngine(), *contract, jurisdictions)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(compare.FormatTable(comparison))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("locumcalc %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	calculateCmd.Flags().String("format", "console", "Output format: console, csv, json")

	taxesCmd.Flags().String("income", "", "Gross annual income")
	taxesCmd.Flags().String("state", "", "Two-letter state code")
	taxesCmd.Flags().String("status", "single", "Filing status")
	taxesCmd.Flags().Int("exemptions", 0, "Number of exemptions")
	taxesCmd.Flags().Bool("resident", true, "Resident of the state for tax purposes")
	taxesCmd.Flags().String("prior-year-tax", "", "Prior-year tax, enables quarterly payment estimates")
	_ = taxesCmd.MarkFlagRequired("income")
	_ = taxesCmd.MarkFlagRequired("state")

	locationsCmd.Flags().Float64("max-col", 0, "Maximum cost-of-living index")
	locationsCmd.Flags().Float64("min-qol", 0, "Minimum quality-of-life score (1-10)")
	locationsCmd.Flags().String("demand", "", "Required demand tier: low, medium, high, critical")
	locationsCmd.Flags().Bool("no-income-tax", false, "Only states with no income tax")
	locationsCmd.Flags().Float64("max-commute", 0, "Maximum average commute minutes")

	compareCmd.Flags().String("states", "", "Comma-separated state codes (default: all)")

	rootCmd.AddCommand(calculateCmd, taxesCmd, locationsCmd, compareCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
