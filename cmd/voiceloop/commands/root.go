package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"voiceorder/internal/bootstrap"
	"voiceorder/internal/config"
	"voiceorder/internal/logger"
	"voiceorder/internal/model"
	"voiceorder/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	userID    string
	inputPath string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "voiceloop",
	Short: "Standalone voice ordering loop",
	Long: `voiceloop listens for guest utterances, classifies them and speaks the reply.
Each input line is one transcribed utterance; say "exit" to stop.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := os.Getenv("LOG_LEVEL")
		if verbose {
			level = "debug"
		} else if level == "" {
			level = "warn"
		}
		logger.Setup(level, "text", os.Stderr)
	},
	RunE: runLoop,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&userID, "user", "u", model.DefaultUserID, "guest identifier used for order context")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "-", "transcript source, - for stdin")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runLoop(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	var in io.Reader = cmd.InOrStdin()
	if inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("open transcript: %w", err)
		}
		defer f.Close()
		in = f
	}

	speaker := service.NewWriterSpeaker(cmd.OutOrStdout(), "Assistant: ")
	if err := speaker.Speak(ctx, "Hello! How can I help you today?"); err != nil {
		return err
	}

	loop := service.NewVoiceLoop(app.Assistant, service.NewLineTranscriber(in), speaker, userID, nil)
	handled, err := loop.Run(ctx)
	logrus.WithField("utterances", handled).Info("Voice session finished")
	return err
}

func loadApp(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize assistant: %w", err)
	}
	return app, nil
}
