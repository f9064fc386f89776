package commands

import (
	"fmt"

	"pannel_pintura/internal/config"
	"pannel_pintura/internal/domain/entities"
	"pannel_pintura/internal/logger"
	"pannel_pintura/internal/usecase"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// quoteFlags mirrors every QuoteInput field as a command-line flag.
type quoteFlags struct {
	projectType string
	area        float64
	finish      string
	rooms       int
	condition   string
	urgency     string
	name        string
	phone       string
}

func (f quoteFlags) input() (entities.QuoteInput, error) {
	pt, err := entities.ParseProjectType(f.projectType)
	if err != nil {
		return entities.QuoteInput{}, err
	}
	ft, err := entities.ParseFinishTier(f.finish)
	if err != nil {
		return entities.QuoteInput{}, err
	}
	wc, err := entities.ParseWallCondition(f.condition)
	if err != nil {
		return entities.QuoteInput{}, err
	}
	u, err := entities.ParseUrgency(f.urgency)
	if err != nil {
		return entities.QuoteInput{}, err
	}
	return entities.QuoteInput{
		ProjectType:      pt,
		AreaSquareMeters: f.area,
		FinishTier:       ft,
		RoomCount:        f.rooms,
		WallCondition:    wc,
		Urgency:          u,
		ContactName:      f.name,
		ContactPhone:     f.phone,
	}, nil
}

// app is built once per invocation in PersistentPreRunE.
type app struct {
	cfg    *config.Config
	quotes *usecase.QuoteUseCase
	locale language.Tag
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		flags     quoteFlags
		rateFile  string
		localeArg string
		a         = &app{}
	)

	root := &cobra.Command{
		Use:           "cotizar",
		Short:         "Painting quote calculator",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.InitWithWriter(cfg.LogLevel, cfg.LogJSON, cmd.ErrOrStderr())

			if rateFile != "" {
				cfg.RateTableFile = rateFile
			}
			if localeArg != "" {
				tag, err := language.Parse(localeArg)
				if err != nil {
					return fmt.Errorf("invalid --locale: %w", err)
				}
				cfg.Locale = tag
			}

			table, err := cfg.LoadRateTable()
			if err != nil {
				return err
			}
			quotes, err := usecase.NewQuoteUseCase(table, cfg.WhatsAppHost, cfg.WhatsAppNumber)
			if err != nil {
				return err
			}
			logger.Global().Debug().Str("rate_table", cfg.RateTableFile).Msg("rate table loaded")

			a.cfg, a.quotes, a.locale = cfg, quotes, cfg.Locale
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.projectType, "tipo", "t", "", "project type: interior | exterior")
	pf.Float64VarP(&flags.area, "area", "a", 0, "area in m²")
	pf.StringVarP(&flags.finish, "acabado", "f", "", "finish: basico | premium | lujo")
	pf.IntVarP(&flags.rooms, "habitaciones", "r", 1, "room count (1-5)")
	pf.StringVarP(&flags.condition, "estado", "e", "", "wall condition: bueno | regular | malo")
	pf.StringVarP(&flags.urgency, "urgencia", "u", "", "urgency: normal | urgente")
	pf.StringVar(&flags.name, "nombre", "", "contact name")
	pf.StringVar(&flags.phone, "telefono", "", "contact phone")
	pf.StringVar(&rateFile, "tarifas", "", "YAML rate table replacing the published rates")
	pf.StringVar(&localeArg, "locale", "", "display locale (default from LOCALE, es-BO)")

	root.AddCommand(
		calcularCmd(a, &flags),
		mensajeCmd(a, &flags),
		pdfCmd(a, &flags),
		tarifasCmd(a),
		contactoCmd(a),
	)
	return root
}
