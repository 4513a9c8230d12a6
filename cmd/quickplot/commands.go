package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vdobler/quickplot"
)

func countCmd(a *app) *cobra.Command {
	var column string

	cmd := &cobra.Command{
		Use:   "count <file.csv>",
		Short: "Bar chart of category counts labeled with percentages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := a.load(args[0])
			if err != nil {
				return err
			}
			col, err := df.Column(column)
			if err != nil {
				return err
			}
			if err := a.plotter.CountPlot(col.Strings(), column); err != nil {
				return err
			}
			a.done(cmd, "count plot of "+column)
			return nil
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "categorical column to count")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func histCmd(a *app) *cobra.Command {
	var column string

	cmd := &cobra.Command{
		Use:   "hist <file.csv>",
		Short: "Histogram with mean and median lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := a.load(args[0])
			if err != nil {
				return err
			}
			data, err := numeric(df, column)
			if err != nil {
				return err
			}
			if err := a.plotter.Hist(data, column); err != nil {
				return err
			}
			a.done(cmd, "histogram of "+column)
			return nil
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "numeric column")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func scatterCmd(a *app) *cobra.Command {
	var xName, yName, hueName string

	cmd := &cobra.Command{
		Use:   "scatter <file.csv>",
		Short: "Scatter plot of two numeric columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := a.load(args[0])
			if err != nil {
				return err
			}
			x, err := numeric(df, xName)
			if err != nil {
				return err
			}
			y, err := numeric(df, yName)
			if err != nil {
				return err
			}
			var hue []string
			if hueName != "" {
				col, err := df.Column(hueName)
				if err != nil {
					return err
				}
				hue = make([]string, df.N)
				for i := range hue {
					hue[i] = col.Text(i)
				}
			}
			if err := a.plotter.Scatter(x, xName, y, yName, hue); err != nil {
				return err
			}
			a.done(cmd, "scatter plot of "+yName+" against "+xName)
			return nil
		},
	}

	cmd.Flags().StringVar(&xName, "x", "", "numeric column on the x axis")
	cmd.Flags().StringVar(&yName, "y", "", "numeric column on the y axis")
	cmd.Flags().StringVar(&hueName, "hue", "", "optional column coloring the points")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

func barCmd(a *app) *cobra.Command {
	var catName, numName string

	cmd := &cobra.Command{
		Use:   "bar <file.csv>",
		Short: "Bar chart of the mean of a numeric column per category",
		Long: `Bar chart of the mean of a numeric column per category.

The table of means is printed to standard output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := a.load(args[0])
			if err != nil {
				return err
			}
			means, err := a.plotter.BivBarPlot(df, catName, numName)
			if err != nil {
				return err
			}
			if !a.describe {
				means.Print(cmd.OutOrStdout())
			}
			a.done(cmd, "mean of "+numName+" by "+catName)
			return nil
		},
	}

	cmd.Flags().StringVar(&catName, "cat", "", "categorical column")
	cmd.Flags().StringVar(&numName, "num", "", "numeric column to average")
	_ = cmd.MarkFlagRequired("cat")
	_ = cmd.MarkFlagRequired("num")

	return cmd
}

// numeric returns the values of the Float column name.
func numeric(df *quickplot.DataFrame, name string) ([]float64, error) {
	col, err := df.Column(name)
	if err != nil {
		return nil, err
	}
	if col.Discrete() {
		return nil, fmt.Errorf("%w: %q", quickplot.ErrNotNumeric, name)
	}
	return col.Data, nil
}
