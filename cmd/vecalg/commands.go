package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yurimorini/vectors"
	"github.com/yurimorini/vectors/calc"
	"github.com/yurimorini/vectors/distance"
)

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print a short demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.eval(cmd, "demo", []string{"100,200", "200,100"}, func(vs []vectors.Vector) (string, error) {
				v1, v3 := vs[0], vs[1]

				diff, err := calc.Difference(v1, v3)
				if err != nil {
					return "", err
				}

				return fmt.Sprintf("%s\n%s\n%s", v1, diff, calc.Scale(2, v1)), nil
			})
		},
	}
}

func (a *app) sumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum VECTOR...",
		Short: "Add vectors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, "sum", args, func(vs []vectors.Vector) (string, error) {
				sum, err := calc.Sum(vs...)
				if err != nil {
					return "", err
				}
				return a.vector(sum), nil
			})
		},
	}
}

func (a *app) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff VECTOR...",
		Short: "Subtract every following vector from the first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, "diff", args, func(vs []vectors.Vector) (string, error) {
				diff, err := calc.Difference(vs...)
				if err != nil {
					return "", err
				}
				return a.vector(diff), nil
			})
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale FACTOR VECTOR",
		Short: "Multiply a vector by a scalar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			factor, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("scale: invalid factor %q: %w", args[0], err)
			}

			return a.eval(cmd, "scale", args[1:], func(vs []vectors.Vector) (string, error) {
				return a.vector(calc.Scale(factor, vs[0])), nil
			})
		},
	}
}

func (a *app) dotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot A B",
		Short: "Dot product of two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, "dot", args, func(vs []vectors.Vector) (string, error) {
				return a.scalar(vs[0].Dot(vs[1])), nil
			})
		},
	}
}

func (a *app) magnitudeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "magnitude VECTOR",
		Short: "Euclidean norm of a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, "magnitude", args, func(vs []vectors.Vector) (string, error) {
				return a.scalar(vs[0].Magnitude()), nil
			})
		},
	}
}

func (a *app) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize VECTOR",
		Short: "Unit vector in the direction of a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, "normalize", args, func(vs []vectors.Vector) (string, error) {
				u, err := vs[0].Normalize()
				if err != nil {
					return "", err
				}
				return a.vector(u), nil
			})
		},
	}
}

func (a *app) angleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "angle A B",
		Short: "Angle between two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, "angle", args, func(vs []vectors.Vector) (string, error) {
				var opts []vectors.Option
				if a.cfg.Degrees {
					opts = append(opts, vectors.InDegrees())
				}

				theta, err := vs[0].Angle(vs[1], opts...)
				if err != nil {
					return "", err
				}
				return a.scalar(theta), nil
			})
		},
	}
}

func (a *app) crossCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cross A B",
		Short: "Cross product of two vectors of at most three dimensions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, "cross", args, func(vs []vectors.Vector) (string, error) {
				c, err := vs[0].Cross(vs[1])
				if err != nil {
					return "", err
				}
				return a.vector(c), nil
			})
		},
	}
}

func (a *app) areaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "area A B",
		Short: "Parallelogram and triangle areas spanned by two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, "area", args, func(vs []vectors.Vector) (string, error) {
				pa, err := vs[0].ParallelogramArea(vs[1])
				if err != nil {
					return "", err
				}

				ta, err := vs[0].TriangleArea(vs[1])
				if err != nil {
					return "", err
				}

				return fmt.Sprintf("parallelogram=%s triangle=%s", a.scalar(pa), a.scalar(ta)), nil
			})
		},
	}
}

func (a *app) projectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project VECTOR BASIS",
		Short: "Decompose a vector into components parallel and perpendicular to a basis",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, "project", args, func(vs []vectors.Vector) (string, error) {
				par, err := vs[0].ParallelComponentTo(vs[1])
				if err != nil {
					return "", err
				}

				perp, err := vs[0].PerpendicularComponentTo(vs[1])
				if err != nil {
					return "", err
				}

				return fmt.Sprintf("parallel=%s\nperpendicular=%s", a.vector(par), a.vector(perp)), nil
			})
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check A B",
		Short: "Report equality, orthogonality and parallelism of two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, "check", args, func(vs []vectors.Vector) (string, error) {
				tol := vectors.WithTolerance(a.cfg.Tolerance)
				return fmt.Sprintf("equal=%t orthogonal=%t parallel=%t",
					vs[0].Equal(vs[1], tol),
					vs[0].IsOrthogonal(vs[1], tol),
					vs[0].IsParallel(vs[1]),
				), nil
			})
		},
	}
}

func (a *app) distanceCmd() *cobra.Command {
	var metric string

	cmd := &cobra.Command{
		Use:   "distance A B",
		Short: "Distance between two vectors under a metric",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := distance.ParseMetric(metric)
			if err != nil {
				return fmt.Errorf("distance: %w", err)
			}

			fn, err := distance.Provider(m)
			if err != nil {
				return fmt.Errorf("distance: %w", err)
			}

			return a.eval(cmd, "distance", args, func(vs []vectors.Vector) (string, error) {
				d, err := fn(vs[0], vs[1])
				if err != nil {
					return "", err
				}
				return a.scalar(d), nil
			})
		},
	}

	cmd.Flags().StringVar(&metric, "metric", "l2", "metric (l2, sqeuclidean, cosine, dot)")
	return cmd
}
