//go:build js && wasm

// Command wasm exposes the quote engine to the web page:
//
//	cotizar(json) -> json
//	mensajeWhatsApp(json) -> json
//	configurarTarifas(json) -> error message or ""
package main

import (
	"syscall/js"

	"pannel_pintura/internal/webbridge"
)

func main() {
	b := webbridge.New()

	js.Global().Set("cotizar", js.FuncOf(func(_ js.Value, args []js.Value) any {
		return b.Quote(firstString(args))
	}))
	js.Global().Set("mensajeWhatsApp", js.FuncOf(func(_ js.Value, args []js.Value) any {
		return b.WhatsAppLink(firstString(args))
	}))
	js.Global().Set("configurarTarifas", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if err := b.SetRates(firstString(args)); err != nil {
			return err.Error()
		}
		return ""
	}))

	select {}
}

func firstString(args []js.Value) string {
	if len(args) == 0 || args[0].Type() != js.TypeString {
		return "{}"
	}
	return args[0].String()
}
