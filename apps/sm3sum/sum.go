//
// sum.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/markkurossi/sm3/sm3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

type algorithm struct {
	name string
	new  func() hash.Hash
}

var algorithms = []*algorithm{
	{
		name: "sm3",
		new: func() hash.Hash {
			return sm3.New()
		},
	},
	{
		name: "sha3-256",
		new: func() hash.Hash {
			return sha3.New256()
		},
	},
	{
		name: "blake2b-256",
		new: func() hash.Hash {
			h, err := blake2b.New256(nil)
			if err != nil {
				panic(err)
			}
			return h
		},
	},
	{
		name: "blake2s-256",
		new: func() hash.Hash {
			h, err := blake2s.New256(nil)
			if err != nil {
				panic(err)
			}
			return h
		},
	},
}

func algorithmNames() string {
	var names []string
	for _, alg := range algorithms {
		names = append(names, alg.name)
	}
	return strings.Join(names, ", ")
}

func lookupAlgorithm(name string) (*algorithm, error) {
	for _, alg := range algorithms {
		if alg.name == name {
			return alg, nil
		}
	}
	return nil, fmt.Errorf("unknown algorithm '%s'", name)
}

func digestReader(alg *algorithm, in io.Reader) (string, uint64, error) {
	h := alg.new()
	n, err := io.Copy(h, in)
	if err != nil {
		return "", uint64(n), err
	}
	return hex.EncodeToString(h.Sum(nil)), uint64(n), nil
}

func printSum(out io.Writer, alg *algorithm, in io.Reader, name string) (
	uint64, error) {

	digest, n, err := digestReader(alg, in)
	if err != nil {
		return n, err
	}
	fmt.Fprintf(out, "%s  %s\n", digest, name)
	return n, nil
}

func sumFile(out io.Writer, alg *algorithm, file string) (uint64, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	log.Debugf("hashing %s", file)
	return printSum(out, alg, bufio.NewReader(f), file)
}

// checkFile verifies the `<digest>  <file>` lines of the check
// file. It returns the number of mismatching or unreadable files.
func checkFile(out io.Writer, alg *algorithm, file string) (int, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return check(out, alg, f)
}

func check(out io.Writer, alg *algorithm, in io.Reader) (int, error) {
	var failed int

	scanner := bufio.NewScanner(in)
	var line int
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		parts := strings.SplitN(text, "  ", 2)
		if len(parts) != 2 {
			return failed, fmt.Errorf("line %d: malformed checksum line", line)
		}
		expected := strings.ToLower(parts[0])
		name := parts[1]

		f, err := os.Open(name)
		if err != nil {
			log.WithField("file", name).Warn(err)
			fmt.Fprintf(out, "%s: FAILED open or read\n", name)
			failed++
			continue
		}
		digest, _, err := digestReader(alg, bufio.NewReader(f))
		f.Close()
		if err != nil {
			return failed, err
		}
		if digest == expected {
			fmt.Fprintf(out, "%s: OK\n", name)
		} else {
			fmt.Fprintf(out, "%s: FAILED\n", name)
			failed++
		}
	}
	return failed, scanner.Err()
}
