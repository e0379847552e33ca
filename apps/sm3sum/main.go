//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/markkurossi/sm3/avalanche"
	"github.com/markkurossi/sm3/encode"
	"github.com/markkurossi/sm3/env"
	"github.com/markkurossi/sm3/password"
	"github.com/markkurossi/sm3/timing"
	"github.com/markkurossi/text/superscript"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	fAlgorithm := flag.String("a", "sm3", "Hash algorithm: "+algorithmNames())
	fString := flag.String("s", "", "Hash the argument string")
	fPassword := flag.Bool("p", false,
		"Compute password digest of the -s argument")
	fSalt := flag.String("salt", "",
		"Compute salted credential digest with the salt (user name)")
	fCheck := flag.String("c", "", "Verify digests listed in the file")
	fAvalanche := flag.Int("avalanche", 0,
		"Run avalanche analysis with the number of samples")
	fInputLen := flag.Int("n", 64, "Avalanche input length in bytes")
	fSeed := flag.String("seed", "", "Deterministic avalanche seed")
	fMax := flag.Int("max", env.DefaultMaxInputSize,
		"Maximum password input size in bytes, negative for unlimited")
	fNorm := flag.String("norm", "none",
		"Password normalization form: none, nfc, nfkc")
	fTiming := flag.Bool("t", false, "Print timing report")
	fVerbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if *fVerbose {
		log.SetLevel(logrus.DebugLevel)
	}

	alg, err := lookupAlgorithm(*fAlgorithm)
	if err != nil {
		log.Fatal(err)
	}
	form, err := encode.ParseForm(*fNorm)
	if err != nil {
		log.Fatal(err)
	}

	config := &env.Config{
		MaxInputSize:  *fMax,
		Normalization: form,
	}
	if len(*fSeed) > 0 {
		config.Rand = avalanche.NewPRG([]byte(*fSeed))
	}
	log.WithFields(logrus.Fields{
		"algorithm": alg.name,
		"limit":     config.InputLimit(),
		"norm":      config.Normalization,
	}).Debugf("sm3 length field: 64 bits, max input 2%s-1 bytes",
		superscript.Itoa(61))

	tm := timing.NewTiming()
	defer func() {
		if *fTiming {
			tm.Print(os.Stdout)
		}
	}()

	switch {
	case *fAvalanche > 0:
		err = runAvalanche(os.Stdout, config, alg, *fAvalanche, *fInputLen)
		tm.Sample("Avalanche", uint64(2 * *fAvalanche * *fInputLen))

	case *fPassword:
		err = runPassword(os.Stdout, config, *fString, *fSalt)
		tm.Sample("Password", uint64(len(*fString)))

	case len(*fCheck) > 0:
		var failed int
		failed, err = checkFile(os.Stdout, alg, *fCheck)
		if err == nil && failed > 0 {
			log.Errorf("%d computed checksum(s) did NOT match", failed)
			os.Exit(1)
		}

	case len(*fString) > 0:
		h := alg.new()
		io.WriteString(h, *fString)
		fmt.Printf("%x  \"%s\"\n", h.Sum(nil), *fString)
		tm.Sample("Hash", uint64(len(*fString)))

	case len(flag.Args()) == 0:
		var n uint64
		n, err = printSum(os.Stdout, alg, os.Stdin, "-")
		tm.Sample("stdin", n)

	default:
		for _, arg := range flag.Args() {
			var n uint64
			n, err = sumFile(os.Stdout, alg, arg)
			if err != nil {
				break
			}
			tm.Sample(arg, n)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runAvalanche(out io.Writer, config *env.Config, alg *algorithm,
	samples, inputLen int) error {

	fn := func(data []byte) []byte {
		h := alg.new()
		h.Write(data)
		return h.Sum(nil)
	}
	log.Debugf("avalanche: %d samples of %d bytes", samples, inputLen)

	stats, err := avalanche.Measure(fn, config.GetRandom(), samples, inputLen)
	if err != nil {
		return err
	}
	stats.Print(out, alg.name)
	return nil
}

func runPassword(out io.Writer, config *env.Config, pw, salt string) error {
	if err := password.ValidateStrength(pw); err != nil {
		log.Warn(err)
	}
	hasher := password.New(config)
	digest, err := hasher.Digest(pw)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", digest)
	if len(salt) == 0 {
		return nil
	}
	stored, err := hasher.Salted(digest, salt)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", stored)
	return nil
}
