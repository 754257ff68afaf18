package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/charkit/pwgen/internal/conf"
	"github.com/charkit/pwgen/internal/crypto"
)

func generate(config *conf.GlobalConfiguration) {
	charset := crypto.TypeableCharset()
	if config.Password.Charset != "" {
		var err error
		charset, err = crypto.ParseCharsetSpec(config.Password.Charset)
		if err != nil {
			logrus.WithError(err).Fatal("invalid charset specification")
		}
	}

	passwords, err := crypto.GeneratePasswords(charset, config.Password.Length, config.Password.Count)
	if err != nil {
		logrus.WithError(err).Fatal("unable to generate passwords")
	}

	for _, password := range passwords {
		if config.Password.Hash {
			hash, err := crypto.HashPassword(password)
			if err != nil {
				logrus.WithError(err).Fatal("unable to hash password")
			}
			fmt.Printf("%s\t%s\n", password, hash)
		} else {
			fmt.Println(password)
		}
	}
}
