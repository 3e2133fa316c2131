package cmd

import (
	"fmt"

	"calring/internal/cli"
	"calring/internal/energy"
	"calring/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagProfileWeight   float64
	flagProfileHeight   float64
	flagProfileAge      int
	flagProfileGender   string
	flagProfileActivity string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your body profile",
	Long: `Show the stored profile and its derived BMR/TDEE. Any set flag
updates that field and re-derives the energy numbers.

Activity levels: sedentary, light, moderate, active, very_active.`,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().Float64Var(&flagProfileWeight, "weight", 0, "Weight in pounds")
	profileCmd.Flags().Float64Var(&flagProfileHeight, "height", 0, "Height in inches")
	profileCmd.Flags().IntVar(&flagProfileAge, "age", 0, "Age in years")
	profileCmd.Flags().StringVar(&flagProfileGender, "gender", "", "male or female")
	profileCmd.Flags().StringVar(&flagProfileActivity, "activity", "", "Activity level")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	cfg, db, state, err := openData()
	if err != nil {
		return err
	}
	defer db.Close()

	p := state.Profile
	changed := false

	if flagProfileWeight > 0 {
		p.WeightLbs = flagProfileWeight
		changed = true
	}
	if flagProfileHeight > 0 {
		p.HeightInches = flagProfileHeight
		changed = true
	}
	if flagProfileAge > 0 {
		p.Age = flagProfileAge
		changed = true
	}
	if flagProfileGender != "" {
		p.Gender = model.Gender(flagProfileGender)
		changed = true
	}
	if flagProfileActivity != "" {
		mult, ok := energy.ActivityMultipliers[flagProfileActivity]
		if !ok {
			return fmt.Errorf("unknown activity level %q", flagProfileActivity)
		}
		p.ActivityMultiplier = mult
		changed = true
	}

	if changed {
		if err := db.SaveProfile(cfg.General.User, p); err != nil {
			return err
		}
		fmt.Println("  Profile updated.")
	}

	if !p.Valid() {
		fmt.Println("  No complete profile. Run `calring setup` or set all of --weight, --height, --age, --gender, --activity.")
		return nil
	}

	derived, err := energy.Derive(p)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Weight:    %s\n", cli.FormatLbs(p.WeightLbs))
	fmt.Printf("  Height:    %.1f in\n", p.HeightInches)
	fmt.Printf("  Age:       %d\n", p.Age)
	fmt.Printf("  Gender:    %s\n", p.Gender)
	fmt.Printf("  Activity:  %.3fx\n", p.ActivityMultiplier)
	fmt.Println()
	fmt.Printf("  BMR:       %s kcal/day\n", cli.FormatKcal(derived.BMR))
	fmt.Printf("  TDEE:      %s kcal/day\n", cli.FormatKcal(derived.TDEE))
	fmt.Println()
	return nil
}
