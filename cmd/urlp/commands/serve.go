package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/livp123/urlp/internal/api"
	"github.com/livp123/urlp/internal/config"
	"github.com/livp123/urlp/internal/domain"
	"github.com/livp123/urlp/internal/pipeline"
	"github.com/livp123/urlp/internal/utils/logger"
)

var flagServePort int

// serveCmd runs the HTTP parse API with /metrics until interrupted.
// serveCmd 运行 HTTP 解析 API 和 /metrics，直到被中断。
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP parse API",
	Long: `Run an HTTP server exposing POST /api/parse, GET /api/health and
prometheus metrics on /metrics. SIGHUP reloads the configuration.
运行一个 HTTP 服务器，暴露 POST /api/parse、GET /api/health
以及 /metrics 上的 prometheus 指标。SIGHUP 重新加载配置。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeOpts, err := pipelineOptions(cmd)
		if err != nil {
			return err
		}
		// Serve mode always counts; that is the point of running it.
		// serve 模式始终开启计数，这正是运行它的意义。
		pipeOpts.Metrics = true
		pipe := pipeline.New(pipeOpts)

		cm := config.NewConfigManager(configPath())
		if err := cm.LoadConfig(); err != nil {
			return err
		}
		metricsCfg := cm.GetMetricsConfig()
		if cmd.Flags().Changed("port") {
			metricsCfg.Port = flagServePort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Reload configuration on SIGHUP without restarting the server.
		// SIGHUP 时重新加载配置，无需重启服务器。
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-hup:
					if err := cm.LoadConfig(); err != nil {
						logger.Get(ctx).Errorf("[API] Config reload failed: %v", err)
						continue
					}
					domain.RegisterTLDs(cm.GetConfig().Domain.ExtraTLDs)
					logger.Get(ctx).Infof("[API] Config reloaded")
				}
			}
		}()

		server := api.NewServer(pipe, metricsCfg)
		if err := server.Start(ctx); err != nil {
			return err
		}

		<-ctx.Done()
		logger.Get(ctx).Infof("[API] Shutting down")
		return server.Stop()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&flagServePort, "port", "p", 0, "HTTP listen port (default from config)")
	serveCmd.Flags().StringVar(&flagFilter, "filter", "", "Keep only records matching an expression")
	serveCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "Parallel parse workers (0: one per CPU)")
	serveCmd.Flags().StringVar(&flagScheme, "default-scheme", "", "Scheme prepended to bare hosts (default: https)")
	RootCmd.AddCommand(serveCmd)
}
