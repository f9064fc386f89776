package commands

import (
	"errors"
	"fmt"

	"pannel_pintura/internal/domain/pricing"
	"pannel_pintura/internal/usecase"

	"github.com/spf13/cobra"
)

func mensajeCmd(a *app, flags *quoteFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mensaje",
		Short: "Print the WhatsApp link that sends the quote (requires --nombre and --telefono)",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.input()
			if err != nil {
				return err
			}
			link, _, err := a.quotes.QuoteLink(in)
			if err != nil {
				return visitorError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
}

func contactoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contacto",
		Short: "Print the generic WhatsApp contact link",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.quotes.GreetingLink())
			return nil
		},
	}
}

// messageError prints msg while still matching the wrapped sentinel.
type messageError struct {
	msg string
	err error
}

func (e messageError) Error() string { return e.msg }
func (e messageError) Unwrap() error { return e.err }

func visitorError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrMissingContactData):
		return messageError{msg: pricing.MissingContactMessage, err: err}
	case errors.Is(err, pricing.ErrAreaOutOfRange):
		return messageError{msg: pricing.AreaOutOfRangeMessage, err: err}
	}
	return err
}
