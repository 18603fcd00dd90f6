package main

import (
	"fmt"

	"github.com/sipcalc/projection-engine/internal/config"
	"github.com/sipcalc/projection-engine/internal/domain"
	"github.com/spf13/cobra"
)

func mustRequire(cmd *cobra.Command, names ...string) {
	for _, n := range names {
		if err := cmd.MarkFlagRequired(n); err != nil {
			panic(err)
		}
	}
}

// defaulted reports whether a rate flag was left unset, in which case the
// configured assumption applies.
func defaulted(cmd *cobra.Command, name string) bool {
	return !cmd.Flags().Changed(name)
}

func newSIPCmd(a *app) *cobra.Command {
	var plan domain.ContributionPlan
	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Project a monthly SIP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan.PeriodsPerYear = domain.PeriodsMonthly
			plan.UseDefaultRate = defaulted(cmd, "rate")
			return a.project(cmd, &domain.Portfolio{Name: plan.Name, SIPs: []domain.ContributionPlan{plan}})
		},
	}
	cmd.Flags().StringVar(&plan.Name, "name", "SIP", "plan name")
	cmd.Flags().Float64Var(&plan.PeriodicAmount, "amount", 0, "monthly contribution")
	cmd.Flags().Float64Var(&plan.AnnualRatePercent, "rate", 0, "expected annual return in percent (default: configured fixed return)")
	cmd.Flags().IntVar(&plan.DurationYears, "years", 0, "investment period in years")
	mustRequire(cmd, "amount", "years")
	return cmd
}

func newDailySIPCmd(a *app) *cobra.Command {
	var plan domain.ContributionPlan
	cmd := &cobra.Command{
		Use:   "daily-sip",
		Short: "Project a daily SIP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan.UseDefaultRate = defaulted(cmd, "rate")
			return a.project(cmd, &domain.Portfolio{Name: plan.Name, DailySIPs: []domain.ContributionPlan{plan}})
		},
	}
	cmd.Flags().StringVar(&plan.Name, "name", "Daily SIP", "plan name")
	cmd.Flags().Float64Var(&plan.PeriodicAmount, "amount", 0, "daily contribution")
	cmd.Flags().Float64Var(&plan.AnnualRatePercent, "rate", 0, "expected annual return in percent (default: configured fixed return)")
	cmd.Flags().IntVar(&plan.DurationYears, "years", 0, "investment period in years")
	mustRequire(cmd, "amount", "years")
	return cmd
}

func newLumpSumCmd(a *app) *cobra.Command {
	var plan domain.LumpSumPlan
	cmd := &cobra.Command{
		Use:   "lumpsum",
		Short: "Project a one-time investment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan.UseDefaultRate = defaulted(cmd, "rate")
			return a.project(cmd, &domain.Portfolio{Name: plan.Name, LumpSums: []domain.LumpSumPlan{plan}})
		},
	}
	cmd.Flags().StringVar(&plan.Name, "name", "Lump sum", "plan name")
	cmd.Flags().Float64Var(&plan.Principal, "principal", 0, "amount invested today")
	cmd.Flags().Float64Var(&plan.AnnualRatePercent, "rate", 0, "expected annual return in percent (default: configured fixed return)")
	cmd.Flags().IntVar(&plan.DurationYears, "years", 0, "investment period in years")
	mustRequire(cmd, "principal", "years")
	return cmd
}

func newSWPCmd(a *app) *cobra.Command {
	var (
		plan      domain.WithdrawalPlan
		frequency string
	)
	cmd := &cobra.Command{
		Use:   "swp",
		Short: "Project a systematic withdrawal plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			freq, err := domain.ParseWithdrawalFrequency(frequency)
			if err != nil {
				return err
			}
			plan.WithdrawalFrequency = freq
			plan.UseDefaultRate = defaulted(cmd, "rate")
			return a.project(cmd, &domain.Portfolio{Name: plan.Name, Withdrawals: []domain.WithdrawalPlan{plan}})
		},
	}
	cmd.Flags().StringVar(&plan.Name, "name", "SWP", "plan name")
	cmd.Flags().Float64Var(&plan.OpeningBalance, "balance", 0, "invested balance at the start")
	cmd.Flags().Float64Var(&plan.WithdrawalAmount, "withdrawal", 0, "monthly withdrawal amount")
	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "withdrawal frequency: monthly, quarterly, annually")
	cmd.Flags().Float64Var(&plan.AnnualRatePercent, "rate", 0, "expected annual return in percent (default: configured fixed return)")
	cmd.Flags().IntVar(&plan.DurationYears, "years", 0, "withdrawal period in years")
	mustRequire(cmd, "balance", "withdrawal", "years")
	return cmd
}

func newGoalCmd(a *app) *cobra.Command {
	var plan domain.GoalPlan
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Find the monthly SIP needed for an inflation-adjusted goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan.UseDefaultRate = defaulted(cmd, "rate")
			plan.UseDefaultInflation = defaulted(cmd, "inflation")
			return a.project(cmd, &domain.Portfolio{Name: plan.Name, Goals: []domain.GoalPlan{plan}})
		},
	}
	cmd.Flags().StringVar(&plan.Name, "name", "Goal", "goal name")
	cmd.Flags().Float64Var(&plan.TargetAmountToday, "target", 0, "goal amount in today's money")
	cmd.Flags().IntVar(&plan.DurationYears, "years", 0, "years until the goal")
	cmd.Flags().Float64Var(&plan.AnnualRatePercent, "rate", 0, "expected annual return in percent (default: configured fixed return)")
	cmd.Flags().Float64Var(&plan.AnnualInflationPercent, "inflation", 0, "annual inflation in percent (default: configured inflation)")
	mustRequire(cmd, "target", "years")
	return cmd
}

func newNPSCmd(a *app) *cobra.Command {
	var plan domain.NPSPlan
	cmd := &cobra.Command{
		Use:   "nps",
		Short: "Project an NPS corpus and pension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.project(cmd, &domain.Portfolio{Name: plan.Name, NPS: []domain.NPSPlan{plan}})
		},
	}
	cmd.Flags().StringVar(&plan.Name, "name", "NPS", "plan name")
	cmd.Flags().Float64Var(&plan.MonthlyContribution, "amount", 0, "monthly contribution")
	cmd.Flags().Float64Var(&plan.AnnualRatePercent, "rate", 0, "expected annual return in percent")
	cmd.Flags().IntVar(&plan.DurationYears, "years", 0, "years until retirement")
	cmd.Flags().Float64Var(&plan.AnnuityPercent, "annuity-percent", 0, "share of the corpus used to buy an annuity (default: configured share)")
	cmd.Flags().Float64Var(&plan.AnnuityRatePercent, "annuity-rate", 0, "annuity rate in percent (default: configured annuity rate)")
	mustRequire(cmd, "amount", "rate", "years")
	return cmd
}

func newRetirementCmd(a *app) *cobra.Command {
	var (
		plan      domain.RetirementIncomePlan
		frequency string
	)
	cmd := &cobra.Command{
		Use:   "retirement",
		Short: "Accumulate with a SIP, then draw the corpus down with an SWP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			freq, err := domain.ParseWithdrawalFrequency(frequency)
			if err != nil {
				return err
			}
			plan.Accumulation.PeriodsPerYear = domain.PeriodsMonthly
			plan.Accumulation.UseDefaultRate = defaulted(cmd, "accumulation-rate")
			plan.Withdrawal.WithdrawalFrequency = freq
			plan.Withdrawal.UseDefaultRate = defaulted(cmd, "withdrawal-rate")
			return a.project(cmd, &domain.Portfolio{Name: plan.Name, Retirement: []domain.RetirementIncomePlan{plan}})
		},
	}
	f := cmd.Flags()
	f.StringVar(&plan.Name, "name", "Retirement income", "plan name")
	f.Float64Var(&plan.Accumulation.PeriodicAmount, "amount", 0, "monthly contribution while working")
	f.Float64Var(&plan.Accumulation.AnnualRatePercent, "accumulation-rate", 0, "annual return while accumulating (default: configured fixed return)")
	f.IntVar(&plan.Accumulation.DurationYears, "accumulation-years", 0, "years of contributions")
	f.Float64Var(&plan.Withdrawal.WithdrawalAmount, "withdrawal", 0, "monthly withdrawal after retirement")
	f.StringVar(&frequency, "frequency", "monthly", "withdrawal frequency: monthly, quarterly, annually")
	f.Float64Var(&plan.Withdrawal.AnnualRatePercent, "withdrawal-rate", 0, "annual return while withdrawing (default: configured fixed return)")
	f.IntVar(&plan.Withdrawal.DurationYears, "withdrawal-years", 0, "years of withdrawals")
	mustRequire(cmd, "amount", "accumulation-years", "withdrawal", "withdrawal-years")
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Project every plan in a portfolio YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			portfolio, err := config.NewInputParser().LoadFromFile(input)
			if err != nil {
				return fmt.Errorf("failed to load portfolio: %w", err)
			}
			return a.project(cmd, portfolio)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "portfolio YAML file")
	mustRequire(cmd, "input")
	return cmd
}
