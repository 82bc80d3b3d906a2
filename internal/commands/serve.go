package commands

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/Xhelo-hub/bank-select-converter/internal/api"
	"github.com/Xhelo-hub/bank-select-converter/internal/logger"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the converter over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.FromContext(cmd.Context())

			app := fiber.New(fiber.Config{
				AppName:   "bank-select-converter",
				BodyLimit: 32 << 20, // statements are small; cap uploads anyway
			})
			app.Use(func(c *fiber.Ctx) error {
				c.SetUserContext(logger.WithContext(c.UserContext(), log))
				return c.Next()
			})

			h := &api.Handler{OutputDir: outputDir}
			h.Register(app)

			log.Info().Str("addr", addr).Msg("listening")
			return app.Listen(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "export", "output directory")
	return cmd
}
