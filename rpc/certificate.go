// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// verify that a certificate and key pair is usable and return the
// TLS configuration along with the certificate fingerprint
func getCertificate(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in galleryd-rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
