package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water [litres]",
	Short: "Add (or with a negative value remove) water intake in litres",
	Long:  "Add water intake in litres. Put -- before a negative value: regimen water -- -0.5",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %s", args[0])
		}

		tr, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := targetDate(tr)
		if err != nil {
			return err
		}
		log, err := tr.AddWater(context.Background(), date, delta)
		if err != nil {
			return fmt.Errorf("Failed to update water: %w", err)
		}
		printMetric("Water", fmt.Sprintf("%.2f L", log.WaterIntake))
		return nil
	},
}

var sleepCmd = &cobra.Command{
	Use:   "sleep [hours]",
	Short: "Set the hours slept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil || hours < 0 || hours > 24 {
			return fmt.Errorf("invalid hours: %s", args[0])
		}

		tr, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := targetDate(tr)
		if err != nil {
			return err
		}
		if _, err := tr.SetSleep(context.Background(), date, hours); err != nil {
			return fmt.Errorf("Failed to update sleep: %w", err)
		}
		return nil
	},
}

var weightCmd = &cobra.Command{
	Use:   "weight [kg|clear]",
	Short: "Record the day's body weight, or clear it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var kg *float64
		if !strings.EqualFold(args[0], "clear") {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil || v <= 0 {
				return fmt.Errorf("invalid weight: %s", args[0])
			}
			kg = &v
		}

		tr, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := targetDate(tr)
		if err != nil {
			return err
		}
		if _, err := tr.SetWeight(context.Background(), date, kg); err != nil {
			return fmt.Errorf("Failed to update weight: %w", err)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{waterCmd, sleepCmd, weightCmd} {
		rootCmd.AddCommand(c)
		addDateFlag(c)
	}
}
