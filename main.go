package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli struct {
		ToUTF8  ToUTF8Cmd  `kong:"cmd,name='to-utf8',help='Converts a UTF-16 text file to UTF-8.'"`
		ToUTF16 ToUTF16Cmd `kong:"cmd,name='to-utf16',help='Converts a UTF-8 text file to UTF-16.'"`
		Detect  DetectCmd  `kong:"cmd,help='Detects the encoding of a text file.'"`
		Version VersionCmd `kong:"cmd,help='Display unicodeconv version information.'"`
	}

	parser := kong.Must(&cli,
		kong.Description("Converts text files between UTF-16 and UTF-8 with strict validation."),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.UsageOnError())

	app, parseErr := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(parseErr)

	appErr := app.Run()
	app.FatalIfErrorf(appErr)
}
