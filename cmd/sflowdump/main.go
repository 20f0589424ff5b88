// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

// Command sflowdump decodes sFlow v5 capture files and prints the decoded
// datagrams as JSON, one per line. It is the external collaborator spec.md
// §1 carves out of the decoder's scope: a CLI wrapper, not part of the
// core.
package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"akvorado/sflow/common/reporter"
	"akvorado/sflow/inlet/flow/decoder/sflow"
	"akvorado/sflow/inlet/flow/decoder/sflow/limits"
)

var limitsPath string

func main() {
	root := &cobra.Command{
		Use:   "sflowdump",
		Short: "Decode sFlow v5 capture files to JSON",
	}
	root.PersistentFlags().StringVar(&limitsPath, "limits", "", "path to a YAML resource-limits override file")
	root.AddCommand(decodeCmd(), serveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [files...]",
		Short: "Decode one or more capture files concurrently and print JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := reporter.New(os.Stderr)
			lim, err := limits.Load(limitsPath)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return decodeStream(os.Stdin, os.Stdout, lim)
			}

			var g errgroup.Group
			for _, path := range args {
				path := path
				g.Go(func() error {
					f, err := os.Open(path)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					defer f.Close()
					r.Logger().Info().Str("file", path).Msg("decoding")
					return decodeStream(f, os.Stdout, lim)
				})
			}
			return g.Wait()
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the decoder's Prometheus metrics over HTTP while decoding a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := reporter.New(os.Stderr)
			lim, err := limits.Load(limitsPath)
			if err != nil {
				return err
			}
			dec := sflow.New(r, lim)

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			// Re-decode the whole capture once up front so /metrics has
			// something to show before the first scrape.
			forEachFramedDatagram(raw, func(b []byte) {
				dec.Decode(sflow.RawDatagram{Payload: b})
			})

			http.Handle("/metrics", promhttp.HandlerFor(r.Registry(), promhttp.HandlerOpts{}))
			r.Logger().Info().Str("addr", addr).Msg("serving metrics")
			return http.ListenAndServe(addr, nil)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to serve /metrics on")
	return cmd
}

// decodeStream reads length-prefixed datagrams (a u32 big-endian length
// followed by that many bytes, the framing sflowdump itself imposes on its
// capture files — not part of the sFlow wire format) and prints each
// decoded Datagram as one JSON line.
func decodeStream(r io.Reader, w io.Writer, lim sflow.Limits) error {
	enc := json.NewEncoder(w)
	var lenBuf [4]byte
	for {
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		n := binary.BigEndian.Uint32(lenBuf[:])
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
		dg, err := sflow.DecodeDatagram(buf, lim)
		if err != nil {
			fmt.Fprintf(os.Stderr, "decode error: %v\n", err)
			continue
		}
		if err := enc.Encode(dg); err != nil {
			return err
		}
	}
}

func forEachFramedDatagram(raw []byte, fn func([]byte)) {
	var pos int
	for pos+4 <= len(raw) {
		n := int(binary.BigEndian.Uint32(raw[pos : pos+4]))
		pos += 4
		if pos+n > len(raw) {
			return
		}
		fn(raw[pos : pos+n])
		pos += n
	}
}
