// Package wallet generates and checks BIP-39 recovery mnemonics.
package wallet

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/cosmos/go-bip39"
)

// DefaultWordCount matches the phrase length issued for new wallets.
const DefaultWordCount = 24

var (
	// ErrInvalidWordCount is returned for word counts BIP-39 does not define.
	ErrInvalidWordCount = errors.New("word count must be one of 12, 15, 18, 21 or 24")

	// ErrInvalidMnemonic is returned when a phrase fails wordlist or checksum checks.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)

// entropyBits maps a phrase length to its entropy size.
var entropyBits = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// Generate returns a fresh English mnemonic with the given number of words.
func Generate(words int) (string, error) {
	bits, ok := entropyBits[words]
	if !ok {
		return "", fmt.Errorf("%w: got %d", ErrInvalidWordCount, words)
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("generating entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("encoding mnemonic: %w", err)
	}

	return mnemonic, nil
}

// ValidWordCount reports whether n is a BIP-39 phrase length.
func ValidWordCount(n int) bool {
	_, ok := entropyBits[n]
	return ok
}

// Normalize lowercases the phrase, drops non-printable runes and collapses
// all whitespace to single spaces.
func Normalize(s string) string {
	printable := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
	return strings.Join(strings.Fields(strings.ToLower(printable)), " ")
}

// WordCount returns the number of whitespace separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Validate checks the phrase against the English wordlist and its checksum.
func Validate(s string) error {
	mnemonic := Normalize(s)
	if !ValidWordCount(WordCount(mnemonic)) {
		return fmt.Errorf("%w: %d words", ErrInvalidMnemonic, WordCount(mnemonic))
	}
	if _, err := bip39.MnemonicToByteArray(mnemonic); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return nil
}
