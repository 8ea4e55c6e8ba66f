package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dconn.dev/showreel/internal/portfolio"
)

var (
	renderFilter string
	renderVideo  string
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the portfolio page to a file or stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		var buf bytes.Buffer
		if err := renderPage(&buf, renderFilter, renderVideo); err != nil {
			return err
		}
		if renderOutput == "" {
			_, err := buf.WriteTo(cmd.OutOrStdout())
			return err
		}
		if err := writeFile(renderOutput, buf.Bytes()); err != nil {
			return err
		}
		logger.Info("page written", zap.String("path", renderOutput))
		return nil
	},
}

// writeFile writes data to path, reporting close errors
func writeFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func init() {
	renderCmd.Flags().StringVar(&renderFilter, "filter", "", "category to filter by")
	renderCmd.Flags().StringVar(&renderVideo, "video", "", "video id to open in the modal")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default stdout)")
}

func renderPage(w io.Writer, filter, video string) error {
	page, err := portfolio.ReadPage(cfg.PagePath)
	if err != nil {
		return err
	}
	c, err := portfolio.Build(page, cfg.Entries, portfolio.NewPlayer(cfg.PlayerHost), portfolio.WithLogger(logger))
	if err != nil {
		return err
	}
	if filter != "" {
		if err := c.ApplyFilter(filter); err != nil {
			return err
		}
	}
	if video != "" {
		if err := c.OpenModal(video); err != nil {
			return err
		}
	}
	html, err := c.HTML()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, html)
	return err
}
