// seehuhn.de/go/plotter - decode pen-plotter byte streams
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Plotter encodes and decodes pen-plotter values and byte streams.
//
// Usage:
//
//	plotter -encode n
//	plotter -decode hi lo
//	plotter [-canvas minx,maxx,miny,maxy] [-png file] [-pdf file] [-json file] -draw-stream stream
//	plotter [-canvas minx,maxx,miny,maxy] [-png file] [-pdf file] [-json file] -draw-file file
//
// With -encode, the value n is printed as a plotter word.  With -decode,
// the two bytes hi and lo (two hex digits each) are converted back to a
// value.  The draw modes print the decoded commands, one per line, and
// optionally write a PNG preview, a PDF plot or the JSON view data.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/plotter"
	"seehuhn.de/go/plotter/codec"
)

var (
	encodeFlag = flag.String("encode", "", "encode the integer `n`")
	decodeFlag = flag.Bool("decode", false, "decode the two bytes given as arguments")
	streamFlag = flag.String("draw-stream", "", "decode the byte `stream`")
	fileFlag   = flag.String("draw-file", "", "decode the stream in the first line of `file`")
	canvasFlag = flag.String("canvas", "", "canvas bounds `minx,maxx,miny,maxy`")
	pngFlag    = flag.String("png", "", "write a preview image to `file`")
	pdfFlag    = flag.String("pdf", "", "write a PDF plot to `file`")
	jsonFlag   = flag.String("json", "", "write the view data to `file`")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: plotter -encode n\n")
	fmt.Fprintf(os.Stderr, "       plotter -decode hi lo\n")
	fmt.Fprintf(os.Stderr, "       plotter [options] -draw-stream stream\n")
	fmt.Fprintf(os.Stderr, "       plotter [options] -draw-file file\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("plotter: ")
	flag.Usage = usage
	flag.Parse()

	switch {
	case *encodeFlag != "":
		n, err := strconv.Atoi(*encodeFlag)
		if err != nil {
			log.Fatalf("invalid value %q", *encodeFlag)
		}
		v, err := codec.Encode(n)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("encoded %d -> %s\n", n, codec.Hex(v))

	case *decodeFlag:
		args := flag.Args()
		if len(args) != 2 {
			usage()
		}
		n, err := codec.Decode(args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("decoded %s %s -> %d\n", args[0], args[1], n)

	case *streamFlag != "":
		draw(*streamFlag)

	case *fileFlag != "":
		stream, err := readStream(*fileFlag)
		if err != nil {
			log.Fatal(err)
		}
		draw(stream)

	default:
		usage()
	}
}

// readStream returns the first line of the named file, with surrounding
// white space removed.
func readStream(fileName string) (string, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(nil, 1<<26)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func draw(stream string) {
	c, err := parseCanvas(*canvasFlag)
	if err != nil {
		log.Fatal(err)
	}
	res, err := plotter.Decode(stream, c)
	if err != nil {
		log.Fatal(err)
	}
	for _, line := range res.Strings() {
		fmt.Println(line)
	}

	if *pngFlag != "" {
		if err := writePNG(res, *pngFlag); err != nil {
			log.Fatal(err)
		}
	}
	if *pdfFlag != "" {
		if err := plotter.WritePDF(res, *pdfFlag, nil); err != nil {
			log.Fatal(err)
		}
	}
	if *jsonFlag != "" {
		if err := writeJSON(res, *jsonFlag); err != nil {
			log.Fatal(err)
		}
	}
}

// parseCanvas parses the -canvas flag.  The empty string selects the
// default canvas.
func parseCanvas(s string) (*plotter.Canvas, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return nil, fmt.Errorf("invalid canvas %q", s)
	}
	var b [4]int
	for i, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid canvas %q", s)
		}
		b[i] = v
	}
	return plotter.NewCanvas(b[0], b[1], b[2], b[3], nil)
}

func writePNG(res *plotter.Result, fileName string) error {
	img, err := plotter.NewPreview(800, 800).Render(res)
	if err != nil {
		return err
	}
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(res *plotter.Result, fileName string) error {
	data, err := json.MarshalIndent(res.View(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fileName, append(data, '\n'), 0644)
}
