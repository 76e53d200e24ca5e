// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/H0llyW00dzZ/gfwlist-smartdns/src/config"
	"github.com/H0llyW00dzZ/gfwlist-smartdns/src/fetch"
	"github.com/H0llyW00dzZ/gfwlist-smartdns/src/gfwlist"
	"github.com/H0llyW00dzZ/gfwlist-smartdns/src/report"
)

// run performs one conversion. Any error it returns is fatal and leaves
// the output file untouched.
func run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	mode, err := gfwlist.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	opt := fetch.Options{Timeout: cfg.Timeout, MaxBytes: cfg.MaxBytes}

	log.WithField("source", cfg.Source).Debug("fetching feed")
	feed, err := fetch.GetWithOptions(ctx, fetch.KindFeed, cfg.Source, opt)
	if err != nil {
		return fmt.Errorf("fetch feed: %w", err)
	}

	opts := []gfwlist.Option{
		gfwlist.WithGroup(cfg.Group),
		gfwlist.WithMode(mode),
		gfwlist.WithConcurrency(cfg.Concurrency),
	}

	if cfg.SuffixList != "" {
		log.WithField("source", cfg.SuffixList).Debug("loading public suffix list")
		list, err := loadSuffixList(ctx, cfg.SuffixList, opt)
		if err != nil {
			return fmt.Errorf("load suffix list: %w", err)
		}
		opts = append(opts, gfwlist.WithSuffixList(list))
	}

	res, err := gfwlist.New(opts...).Convert(ctx, feed)
	if err != nil {
		return fmt.Errorf("decode feed: %w", err)
	}

	for _, terr := range res.Errors {
		log.WithField("line", terr.Line).Debug(terr.Error())
	}

	// The report goes first so that a report failure leaves the
	// previous output in place.
	if cfg.Report != "" {
		var buf bytes.Buffer
		if err := report.Write(&buf, res); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if err := writeFileAtomic(cfg.Report, buf.Bytes()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.WithField("path", cfg.Report).Debug("report written")
	}

	if err := writeFileAtomic(cfg.Output, []byte(res.Payload())); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	// The summary is printed regardless of the log level.
	fmt.Fprintf(log.Out, "Total %d lines (already removed %d duplicated) transformed.\n", res.Total, res.DuplicatesRemoved)
	fmt.Fprintf(log.Out, "%d lines can't transform.\n", res.ErrorCount())
	return nil
}

func loadSuffixList(ctx context.Context, location string, opt fetch.Options) (gfwlist.SuffixList, error) {
	data, err := fetch.GetWithOptions(ctx, fetch.KindSuffixList, location, opt)
	if err != nil {
		return nil, err
	}
	return gfwlist.LoadSuffixList(bytes.NewReader(data))
}

// writeFileAtomic writes data to a temporary file next to path and
// renames it into place, so a failed run never leaves a partial file.
func writeFileAtomic(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
