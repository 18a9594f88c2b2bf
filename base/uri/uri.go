// Package uri rewrites content addressed uris into fetchable http urls
package uri

import (
	"strings"
)

const (
	DefaultIpfsGateway    = "https://ipfs.io/ipfs/"
	DefaultArweaveGateway = "https://arweave.net/"

	schemeIpfs    = "ipfs://"
	schemeArweave = "ar://"
)

type Resolver struct {
	ipfsGateway    string
	arweaveGateway string
}

// NewResolver falls back to public gateways for empty arguments
func NewResolver(ipfsGateway, arweaveGateway string) *Resolver {
	if len(ipfsGateway) == 0 {
		ipfsGateway = DefaultIpfsGateway
	}
	if len(arweaveGateway) == 0 {
		arweaveGateway = DefaultArweaveGateway
	}
	return &Resolver{
		ipfsGateway:    withSlash(ipfsGateway),
		arweaveGateway: withSlash(arweaveGateway),
	}
}

// Resolve leaves http(s) and unknown uris untouched
func (r *Resolver) Resolve(u string) string {
	switch {
	case strings.HasPrefix(u, schemeIpfs):
		p := strings.TrimPrefix(u, schemeIpfs)
		// ipfs://ipfs/<cid> is seen in the wild
		p = strings.TrimPrefix(p, "ipfs/")
		return r.ipfsGateway + p
	case strings.HasPrefix(u, schemeArweave):
		return r.arweaveGateway + strings.TrimPrefix(u, schemeArweave)
	default:
		return u
	}
}

func withSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
