// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/mode"
)

// InternalConnection - type to allow the rpc system to serve a
// single http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *InternalConnection) Close() error {
	return nil
}

// the argument passed to the handlers
type httpHandler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	maximumConnections uint64
}

// start the HTTPS bridge, sharing the rpc server
func initialiseHTTPS(configuration *HTTPSConfiguration, server *rpc.Server, version string) error {

	name := "http_rpc"
	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", name)
		return nil
	}

	if configuration.MaximumConnections < 1 {
		log.Errorf("invalid %s maximum connection limit: %d", name, configuration.MaximumConnections)
		return fault.ErrMissingParameters
	}

	tlsConfiguration, fin, err := getCertificate(log, name, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", name, fin)

	// parse the per-path access control lists
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.TrimSpace(ip))
			if nil != err {
				return err
			}
			set[i] = cidr
		}
	}

	handler := &httpHandler{
		log:                log,
		server:             server,
		start:              time.Now().UTC(),
		version:            version,
		allow:              local,
		maximumConnections: configuration.MaximumConnections,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/galleryd/rpc", handler.rpc)
	mux.HandleFunc("/galleryd/details", handler.details)
	mux.HandleFunc("/", handler.root)

	for _, listen := range configuration.Listen {
		if '*' == listen[0] {
			listen = "[::]" + ":" + strings.Split(listen, ":")[1]
		}
		log.Infof("starting server: %s on: %q", name, listen)
		go listenAndServeTLSKeyPair(listen, mux, tlsConfiguration)
	}

	return nil
}

// this matches anything not matched and returns error
func (s *httpHandler) root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// performs a call to any normal RPC
func (s *httpHandler) rpc(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if connectionCount.Increment() > s.maximumConnections {
		connectionCount.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer connectionCount.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := s.server.ServeRequest(serverCodec)
	if nil != err {
		sendInternalServerError(w)
		return
	}
}

// to allow a GET for the same response as the Node.Info RPC
// (restricted by the "details" allow list)
func (s *httpHandler) details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("details", r) {
		s.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	connectionCount.Increment()
	defer connectionCount.Decrement()

	type theReply struct {
		Mode    string `json:"mode"`
		Testing bool   `json:"testing"`
		RPCs    uint64 `json:"rpcs"`
		Version string `json:"version"`
		Uptime  string `json:"uptime"`
	}

	reply := theReply{
		Mode:    mode.String(),
		Testing: mode.IsTesting(),
		RPCs:    connectionCount.Uint64(),
		Version: s.version,
		Uptime:  time.Since(s.start).String(),
	}

	sendReply(w, reply)
}

// check a remote address against the allow list for a path
func (s *httpHandler) isAllowed(path string, r *http.Request) bool {
	last := strings.LastIndex(r.RemoteAddr, ":")
	if last < 0 {
		return false
	}
	addr := strings.Trim(r.RemoteAddr[:last], "[]")
	ip := net.ParseIP(addr)
	if nil == ip {
		return false
	}
	for _, cidr := range s.allow[path] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// listenAndServeTLSKeyPair - start a HTTPS server using an in-memory
// TLS key pair
func listenAndServeTLSKeyPair(addr string, handler http.Handler, cfg *tls.Config) error {
	s := &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	cfg.NextProtos = []string{"http/1.1"}

	ln, err := net.Listen("tcp", addr)
	if nil != err {
		return err
	}

	tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, cfg)

	return s.Serve(tlsListener)
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (c net.Conn, err error) {
	tc, err := ln.AcceptTCP()
	if nil != err {
		return
	}
	tc.SetKeepAlive(true)
	tc.SetKeepAlivePeriod(3 * time.Minute)
	return tc, nil
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, "too many requests", http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:    code,
		Error:   http.StatusText(code),
		Message: message,
	})
	if nil != err {
		// manually composed error just in case JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	w.Write(text)
}
