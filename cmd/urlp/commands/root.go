package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/livp123/urlp/internal/config"
	"github.com/livp123/urlp/internal/domain"
	"github.com/livp123/urlp/internal/format"
	"github.com/livp123/urlp/internal/pipeline"
	"github.com/livp123/urlp/internal/runtime"
	"github.com/livp123/urlp/internal/utils/logger"
)

// globalCfg holds the configuration loaded in PersistentPreRun.
// globalCfg 保存在 PersistentPreRun 中加载的配置。
var globalCfg = config.Default()

var (
	flagURLs        []string
	flagFile        string
	flagFollow      bool
	flagFormat      string
	flagFields      string
	flagTemplate    string
	flagEscape      string
	flagTable       string
	flagDialect     string
	flagCreateTable bool
	flagHeader      bool
	flagPretty      bool
	flagNoNewline   bool
	flagNullValue   string
	flagSort        bool
	flagUnique      bool
	flagFilter      string
	flagWorkers     int
	flagStrict      bool
	flagScheme      string
	flagAll         bool
	flagVerbose     bool
)

// componentFlags maps the per-component selection flags to output fields,
// in canonical field order.
// componentFlags 将各组件选择标志映射到输出字段，按规范字段顺序排列。
var componentFlags = []struct {
	flag  string
	field string
}{
	{"scheme", "scheme"},
	{"username", "username"},
	{"host", "hostname"},
	{"subdomain", "subdomain"},
	{"domain", "domain"},
	{"port", "port"},
	{"path", "path"},
	{"query", "query"},
	{"fragment", "fragment"},
}

var RootCmd = &cobra.Command{
	Use:   "urlp [url...]",
	Short: "A fast URL decomposition and extraction tool",
	// Short: 一个快速的 URL 分解与提取工具
	Long: `urlp decomposes URLs into their components in a single pass and
renders them as plain text, TSV, CSV, JSON, JSONL, SQL or custom templates.
URLs are read from arguments, a file (--file) or stdin.
urlp 在单次扫描中将 URL 分解为各个组成部分，并以纯文本、TSV、CSV、
JSON、JSONL、SQL 或自定义模板输出。
URL 可以来自命令行参数、文件（--file）或标准输入。`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration to get logging settings
		// 加载配置以获取日志设置
		cfgPath := runtime.ConfigPath
		if cfgPath == "" {
			cfgPath = config.DefaultConfigPath
		}

		cfg, err := config.LoadGlobalConfig(cfgPath)
		if err != nil {
			// If config fails to load, use default logging config (stderr only)
			// 如果加载配置失败，使用默认日志配置（仅 stderr）
			logger.Init(logger.LoggingConfig{
				Enabled: false,
				Level:   "info",
			})
			logger.Get(nil).Warnf("[WARN]  Failed to load config %s: %v", cfgPath, err)
		} else {
			globalCfg = cfg
			if flagVerbose {
				cfg.Logging.Level = "debug"
			}
			logger.Init(cfg.Logging)
			domain.RegisterTLDs(cfg.Domain.ExtraTLDs)
		}

		// Inject logger into context
		// 将 Logger 注入 Context
		ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
		cmd.SetContext(ctx)
	},
	RunE: runParse,
}

func init() {
	// Config file path
	// 配置文件路径
	RootCmd.PersistentFlags().StringVarP(&runtime.ConfigPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	flags := RootCmd.Flags()
	flags.StringSliceVar(&flagURLs, "urls", nil, "Input URLs to process (alternative to positional arguments)")
	flags.StringVarP(&flagFile, "file", "i", "", "Read URLs from file ('-' for stdin)")
	flags.BoolVarP(&flagFollow, "follow", "F", false, "Keep reading the file as it grows (requires --file)")
	flags.StringVarP(&flagFormat, "format", "f", "plain", "Output format: plain, tsv, csv, json, jsonl, sql")
	flags.StringVar(&flagFields, "fields", "", "Comma-separated fields to output (e.g. domain,path,url)")
	flags.StringVarP(&flagTemplate, "template", "t", "", "Custom output template, e.g. '{scheme}://{domain}{path}'")
	flags.StringVar(&flagEscape, "escape", "none", "Escape mode for template values: none, shell, csv, json, sql")
	flags.StringVar(&flagTable, "sql-table", "urls", "Table name for SQL output")
	flags.StringVar(&flagDialect, "sql-dialect", "generic", "SQL dialect: postgres, mysql, sqlite, generic")
	flags.BoolVar(&flagCreateTable, "sql-create-table", false, "Include a CREATE TABLE statement in SQL output")
	flags.BoolVar(&flagHeader, "header", false, "Include header row for tabular formats")
	flags.BoolVar(&flagPretty, "pretty", false, "Pretty-print JSON output")
	flags.BoolVarP(&flagNoNewline, "no-newline", "n", false, "Suppress trailing newline")
	flags.StringVar(&flagNullValue, "null-empty", "", `Value to print for missing fields in tabular formats (default: \N)`)
	flags.BoolVarP(&flagSort, "sort", "s", false, "Sort the output by URL")
	flags.BoolVarP(&flagUnique, "unique", "u", false, "Remove adjacent duplicate URLs (global with --sort)")
	flags.StringVar(&flagFilter, "filter", "", `Keep only records matching an expression, e.g. 'Domain == "example.com"'`)
	flags.IntVarP(&flagWorkers, "workers", "w", 0, "Parallel parse workers (0: one per CPU)")
	flags.BoolVar(&flagStrict, "strict", false, "Exit with non-zero code if any URL fails to parse")
	flags.StringVar(&flagScheme, "default-scheme", "", "Scheme prepended to bare hosts (default: https)")
	flags.BoolVar(&flagAll, "all", false, "Display all URL components")

	// Per-component selection flags
	// 各组件选择标志
	for _, cf := range componentFlags {
		flags.Bool(cf.flag, false, fmt.Sprintf("Extract and display the %s", cf.field))
	}

	// Disable powershell completion (Linux-focused project doesn't need it)
	// 禁用 powershell 补全（Linux 项目不需要）
	RootCmd.CompletionOptions.DisableDescriptions = true
}

// outputOptions merges config defaults with explicit flags into one Options.
// outputOptions 将配置默认值与显式标志合并为一个 Options。
func outputOptions(cmd *cobra.Command) (format.Format, *format.Options, error) {
	changed := cmd.Flags().Changed

	formatName := globalCfg.Output.Format
	if changed("format") || formatName == "" {
		formatName = flagFormat
	}
	f, err := format.ParseFormat(formatName)
	if err != nil {
		return "", nil, err
	}
	if flagTemplate != "" {
		f = format.Custom
	}

	fieldSpec := globalCfg.Output.Fields
	if changed("fields") {
		fieldSpec = flagFields
	}
	var fields []string
	if fieldSpec != "" {
		if fields, err = format.ParseFields(fieldSpec); err != nil {
			return "", nil, err
		}
	} else if !flagAll {
		// Component flags select individual fields; --all and an empty
		// selection both mean every field.
		// 组件标志选择单个字段；--all 和空选择都表示全部字段。
		for _, cf := range componentFlags {
			if on, _ := cmd.Flags().GetBool(cf.flag); on {
				fields = append(fields, cf.field)
			}
		}
	}

	escape, err := format.ParseEscapeMode(flagEscape)
	if err != nil {
		return "", nil, err
	}
	dialect, err := format.ParseDialect(flagDialect)
	if err != nil {
		return "", nil, err
	}

	nullValue := globalCfg.Output.NullValue
	if changed("null-empty") {
		nullValue = flagNullValue
	}

	opts := &format.Options{
		Fields:      fields,
		NullValue:   nullValue,
		Header:      flagHeader,
		Pretty:      flagPretty,
		NoNewline:   flagNoNewline,
		Table:       flagTable,
		Dialect:     dialect,
		CreateTable: flagCreateTable,
		Escape:      escape,
	}
	if flagTemplate != "" {
		if opts.Template, err = format.ParseTemplate(flagTemplate); err != nil {
			return "", nil, err
		}
	}
	return f, opts, nil
}

// pipelineOptions merges config defaults with explicit flags.
// pipelineOptions 将配置默认值与显式标志合并。
func pipelineOptions(cmd *cobra.Command) (pipeline.Options, error) {
	changed := cmd.Flags().Changed

	workers := globalCfg.Base.Workers
	if changed("workers") {
		workers = flagWorkers
	}
	strict := globalCfg.Base.Strict
	if changed("strict") {
		strict = flagStrict
	}
	scheme := globalCfg.Base.DefaultScheme
	if changed("default-scheme") {
		scheme = flagScheme
	}

	opts := pipeline.Options{
		Workers:       workers,
		DefaultScheme: scheme,
		Strict:        strict,
		Sort:          flagSort,
		Unique:        flagUnique,
		Metrics:       globalCfg.Metrics.Enabled,
	}
	if flagFilter != "" {
		filter, err := pipeline.NewFilter(flagFilter)
		if err != nil {
			return opts, err
		}
		opts.Filter = filter
	}
	return opts, nil
}

// collectInputs gathers URLs from arguments, --file and piped stdin.
// collectInputs 从命令行参数、--file 和管道 stdin 收集 URL。
func collectInputs(args []string, countMetrics bool) ([]string, error) {
	inputs := append([]string(nil), args...)
	inputs = append(inputs, flagURLs...)

	if flagFile != "" {
		lines, err := pipeline.ReadFile(flagFile, countMetrics)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, lines...)
	} else if len(inputs) == 0 && pipeline.StdinIsPiped() {
		lines, err := pipeline.ReadLines(os.Stdin, countMetrics)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, lines...)
	}
	return inputs, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	f, outOpts, err := outputOptions(cmd)
	if err != nil {
		return err
	}
	pipeOpts, err := pipelineOptions(cmd)
	if err != nil {
		return err
	}
	pipe := pipeline.New(pipeOpts)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagFollow {
		if flagFile == "" || flagFile == "-" {
			return fmt.Errorf("--follow requires --file pointing to a regular file")
		}
		err := pipe.Follow(ctx, flagFile, func(rec format.Record) error {
			return format.Write(os.Stdout, f, []format.Record{rec}, outOpts)
		})
		// Interruption is the normal way to leave follow mode
		// 中断是退出 follow 模式的正常方式
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	inputs, err := collectInputs(args, pipeOpts.Metrics)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return cmd.Help()
	}

	records, err := pipe.Process(ctx, inputs)
	if err != nil {
		return err
	}
	return format.Write(os.Stdout, f, records, outOpts)
}

func Execute() {
	defer func() {
		_ = logger.Sync()
	}()
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
