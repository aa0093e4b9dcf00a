// Command tcryptoctl generates and exercises threshold BLS key material.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/anupsv/threshold-crypto/tcrypto"
)

// Command represents a subcommand.
type Command struct {
	Name        string
	Description string
	Execute     func(args []string) error
}

func main() {
	commands := []Command{
		{Name: "keygen", Description: "Generate a single (non-threshold) BLS key pair", Execute: cmdKeyGen},
		{Name: "threshold-keygen", Description: "Generate an (n, t+1)-threshold key set and its shares", Execute: cmdThresholdKeyGen},
		{Name: "sign", Description: "Sign a message with a secret key", Execute: cmdSign},
		{Name: "verify", Description: "Verify a signature against a public key", Execute: cmdVerify},
		{Name: "encrypt", Description: "Encrypt a message to a public key", Execute: cmdEncrypt},
		{Name: "decrypt", Description: "Decrypt a ciphertext with a secret key", Execute: cmdDecrypt},
		{Name: "combine-sig", Description: "Combine threshold signature shares", Execute: cmdCombineSig},
		{Name: "combine-dec", Description: "Combine threshold decryption shares", Execute: cmdCombineDec},
	}

	if len(os.Args) < 2 {
		showHelp(commands)
		os.Exit(1)
	}

	cmdName := os.Args[1]
	for _, cmd := range commands {
		if cmd.Name == cmdName {
			if err := cmd.Execute(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmdName)
	showHelp(commands)
	os.Exit(1)
}

func showHelp(commands []Command) {
	fmt.Println("tcryptoctl - threshold BLS signature and encryption utility")
	fmt.Println("\nUsage:")
	fmt.Println("  tcryptoctl <command> [options]")
	fmt.Println("\nAvailable Commands:")
	for _, cmd := range commands {
		fmt.Printf("  %-18s %s\n", cmd.Name, cmd.Description)
	}
	fmt.Println("\nRun 'tcryptoctl <command> -h' for more information about a command")
}

func b64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

func unb64(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return json.Unmarshal(data, v)
}

type keyPairFile struct {
	SecretKey string `json:"secretKey"`
	PublicKey string `json:"publicKey"`
}

func cmdKeyGen(args []string) error {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	output := fs.String("output", "keypair.json", "Output file for the key pair")
	fs.Parse(args)

	sk, err := tcrypto.NewSecretKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generating secret key: %w", err)
	}
	skBytes, err := tcrypto.SerdeSecretKey{SecretKey: sk}.MarshalBinary()
	if err != nil {
		return err
	}
	pkBytes, err := sk.PublicKey().MarshalBinary()
	if err != nil {
		return err
	}

	if err := writeJSON(*output, keyPairFile{SecretKey: b64(skBytes), PublicKey: b64(pkBytes)}); err != nil {
		return err
	}
	fmt.Printf("Key pair written to %s\n", *output)
	return nil
}

type thresholdKeySetFile struct {
	Threshold int      `json:"threshold"`
	Parties   int      `json:"parties"`
	PublicKey string   `json:"publicKey"`
	PublicSet string   `json:"publicKeySet"`
	Shares    []string `json:"secretShares"`
}

func cmdThresholdKeyGen(args []string) error {
	fs := flag.NewFlagSet("threshold-keygen", flag.ExitOnError)
	threshold := fs.Int("threshold", 2, "Polynomial degree t: t+1 shares are required to reconstruct")
	parties := fs.Int("parties", 5, "Number of parties to generate shares for")
	output := fs.String("output", "threshold-keyset.json", "Output file for the key set")
	fs.Parse(args)

	if *parties < *threshold+1 {
		return fmt.Errorf("parties (%d) must be at least threshold+1 (%d)", *parties, *threshold+1)
	}

	set, err := tcrypto.TryRandomSecretKeySet(*threshold, rand.Reader)
	if err != nil {
		return fmt.Errorf("generating threshold key set: %w", err)
	}
	pubSet := set.PublicKeys()

	pubSetBytes, err := pubSet.MarshalBinary()
	if err != nil {
		return err
	}
	pubKeyBytes, err := pubSet.PublicKey().MarshalBinary()
	if err != nil {
		return err
	}

	shares := make([]string, *parties)
	for i := 0; i < *parties; i++ {
		share := set.SecretKeyShare(uint64(i))
		shareBytes, err := tcrypto.SerdeSecretKeyShare{SecretKeyShare: share}.MarshalBinary()
		if err != nil {
			return fmt.Errorf("serializing share %d: %w", i, err)
		}
		shares[i] = b64(shareBytes)
	}

	out := thresholdKeySetFile{
		Threshold: *threshold,
		Parties:   *parties,
		PublicKey: b64(pubKeyBytes),
		PublicSet: b64(pubSetBytes),
		Shares:    shares,
	}
	if err := writeJSON(*output, out); err != nil {
		return err
	}
	fmt.Printf("Threshold key set (t=%d, n=%d) written to %s\n", *threshold, *parties, *output)
	return nil
}

func cmdSign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	keyFile := fs.String("key", "keypair.json", "Key pair file")
	message := fs.String("message", "", "Message to sign")
	fs.Parse(args)

	var kp keyPairFile
	if err := readJSON(*keyFile, &kp); err != nil {
		return err
	}
	skBytes, err := unb64(kp.SecretKey)
	if err != nil {
		return fmt.Errorf("decoding secret key: %w", err)
	}
	var wrapped tcrypto.SerdeSecretKey
	if err := wrapped.UnmarshalBinary(skBytes); err != nil {
		return fmt.Errorf("unmarshaling secret key: %w", err)
	}

	sig := wrapped.SecretKey.Sign([]byte(*message))
	fmt.Println(b64(sig.Bytes()))
	return nil
}

func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	keyFile := fs.String("key", "keypair.json", "Key pair file")
	message := fs.String("message", "", "Message that was signed")
	signature := fs.String("signature", "", "Base64-encoded signature")
	fs.Parse(args)

	var kp keyPairFile
	if err := readJSON(*keyFile, &kp); err != nil {
		return err
	}
	pkBytes, err := unb64(kp.PublicKey)
	if err != nil {
		return fmt.Errorf("decoding public key: %w", err)
	}
	var pk tcrypto.PublicKey
	if err := pk.UnmarshalBinary(pkBytes); err != nil {
		return fmt.Errorf("unmarshaling public key: %w", err)
	}

	sigBytes, err := unb64(*signature)
	if err != nil {
		return fmt.Errorf("decoding signature: %w", err)
	}
	sig, err := tcrypto.SignatureFromBytes(sigBytes)
	if err != nil {
		return fmt.Errorf("decoding signature: %w", err)
	}

	if pk.Verify(sig, []byte(*message)) {
		fmt.Println("valid")
		return nil
	}
	fmt.Println("invalid")
	os.Exit(1)
	return nil
}

func cmdEncrypt(args []string) error {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	keyFile := fs.String("key", "keypair.json", "Key pair file")
	message := fs.String("message", "", "Message to encrypt")
	fs.Parse(args)

	var kp keyPairFile
	if err := readJSON(*keyFile, &kp); err != nil {
		return err
	}
	pkBytes, err := unb64(kp.PublicKey)
	if err != nil {
		return fmt.Errorf("decoding public key: %w", err)
	}
	var pk tcrypto.PublicKey
	if err := pk.UnmarshalBinary(pkBytes); err != nil {
		return fmt.Errorf("unmarshaling public key: %w", err)
	}

	ct, err := pk.Encrypt([]byte(*message), rand.Reader)
	if err != nil {
		return fmt.Errorf("encrypting: %w", err)
	}
	fmt.Println(b64(ct.Bytes()))
	return nil
}

func cmdDecrypt(args []string) error {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	keyFile := fs.String("key", "keypair.json", "Key pair file")
	ciphertext := fs.String("ciphertext", "", "Base64-encoded ciphertext")
	fs.Parse(args)

	var kp keyPairFile
	if err := readJSON(*keyFile, &kp); err != nil {
		return err
	}
	skBytes, err := unb64(kp.SecretKey)
	if err != nil {
		return fmt.Errorf("decoding secret key: %w", err)
	}
	var wrapped tcrypto.SerdeSecretKey
	if err := wrapped.UnmarshalBinary(skBytes); err != nil {
		return fmt.Errorf("unmarshaling secret key: %w", err)
	}

	ctBytes, err := unb64(*ciphertext)
	if err != nil {
		return fmt.Errorf("decoding ciphertext: %w", err)
	}
	ct, err := tcrypto.CiphertextFromBytes(ctBytes)
	if err != nil {
		return fmt.Errorf("decoding ciphertext: %w", err)
	}

	msg, err := wrapped.SecretKey.Decrypt(ct)
	if err != nil {
		return fmt.Errorf("decrypting: %w", err)
	}
	fmt.Println(string(msg))
	return nil
}

func cmdCombineSig(args []string) error {
	fs := flag.NewFlagSet("combine-sig", flag.ExitOnError)
	setFile := fs.String("keyset", "threshold-keyset.json", "Threshold key set file")
	message := fs.String("message", "", "Signed message")
	fs.Parse(args)
	shareArgs := fs.Args()

	var ks thresholdKeySetFile
	if err := readJSON(*setFile, &ks); err != nil {
		return err
	}
	pubSetBytes, err := unb64(ks.PublicSet)
	if err != nil {
		return fmt.Errorf("decoding public key set: %w", err)
	}
	var pubSet tcrypto.PublicKeySet
	if err := pubSet.UnmarshalBinary(pubSetBytes); err != nil {
		return fmt.Errorf("unmarshaling public key set: %w", err)
	}

	shares := make(map[uint64]*tcrypto.SignatureShare, len(shareArgs))
	for _, arg := range shareArgs {
		var idx uint64
		var b64Sig string
		if _, err := fmt.Sscanf(arg, "%d:%s", &idx, &b64Sig); err != nil {
			return fmt.Errorf("parsing share %q (want index:base64): %w", arg, err)
		}
		sigBytes, err := unb64(b64Sig)
		if err != nil {
			return fmt.Errorf("decoding share %q: %w", arg, err)
		}
		var share tcrypto.SignatureShare
		if err := share.UnmarshalBinary(sigBytes); err != nil {
			return fmt.Errorf("unmarshaling share %q: %w", arg, err)
		}
		shares[idx] = &share
	}

	sig, err := pubSet.CombineSignatures(shares)
	if err != nil {
		return fmt.Errorf("combining signature shares: %w", err)
	}
	if !pubSet.PublicKey().Verify(sig, []byte(*message)) {
		return fmt.Errorf("combined signature failed verification")
	}
	fmt.Println(b64(sig.Bytes()))
	return nil
}

func cmdCombineDec(args []string) error {
	fs := flag.NewFlagSet("combine-dec", flag.ExitOnError)
	setFile := fs.String("keyset", "threshold-keyset.json", "Threshold key set file")
	ciphertext := fs.String("ciphertext", "", "Base64-encoded ciphertext")
	fs.Parse(args)
	shareArgs := fs.Args()

	var ks thresholdKeySetFile
	if err := readJSON(*setFile, &ks); err != nil {
		return err
	}
	pubSetBytes, err := unb64(ks.PublicSet)
	if err != nil {
		return fmt.Errorf("decoding public key set: %w", err)
	}
	var pubSet tcrypto.PublicKeySet
	if err := pubSet.UnmarshalBinary(pubSetBytes); err != nil {
		return fmt.Errorf("unmarshaling public key set: %w", err)
	}

	ctBytes, err := unb64(*ciphertext)
	if err != nil {
		return fmt.Errorf("decoding ciphertext: %w", err)
	}
	ct, err := tcrypto.CiphertextFromBytes(ctBytes)
	if err != nil {
		return fmt.Errorf("decoding ciphertext: %w", err)
	}

	shares := make(map[uint64]*tcrypto.DecryptionShare, len(shareArgs))
	for _, arg := range shareArgs {
		var idx uint64
		var b64Share string
		if _, err := fmt.Sscanf(arg, "%d:%s", &idx, &b64Share); err != nil {
			return fmt.Errorf("parsing share %q (want index:base64): %w", arg, err)
		}
		shareBytes, err := unb64(b64Share)
		if err != nil {
			return fmt.Errorf("decoding share %q: %w", arg, err)
		}
		var share tcrypto.DecryptionShare
		if err := share.UnmarshalBinary(shareBytes); err != nil {
			return fmt.Errorf("unmarshaling share %q: %w", arg, err)
		}
		shares[idx] = &share
	}

	msg, err := pubSet.Decrypt(shares, ct)
	if err != nil {
		return fmt.Errorf("combining decryption shares: %w", err)
	}
	fmt.Println(string(msg))
	return nil
}
