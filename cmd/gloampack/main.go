// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// gloampack packs a directory of asset files into a gap archive the
// engine can load at startup.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/gloam3d/gloam/asset"
)

func main() {
	out := flag.String("out", "assets.gap", "output archive path")
	author := flag.String("author", "gloam", "archive author stamp")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: gloampack [-out file] [-author name] <directory>")
	}
	dir := flag.Arg(0)

	builder := asset.NewBuilder(asset.Header{
		Author:      *author,
		DateCreated: time.Now().Unix(),
		Version:     1,
	})

	count := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		name, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		contents, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := builder.Add(filepath.ToSlash(name), contents); err != nil {
			return err
		}
		log.WithField("entry", name).Debug("packed")
		count++
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	file, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	written, err := builder.WriteTo(file)
	if err != nil {
		log.Fatal(err)
	}

	log.WithFields(log.Fields{
		"archive": *out,
		"entries": count,
		"bytes":   written,
	}).Info("archive written")
}
