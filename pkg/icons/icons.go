package icons

import (
	"maps"
	"slices"
	"strings"

	"github.com/macro-ai/archdiagrams/pkg/errors"
)

// Path identifies a node kind as "provider.category.Name".
type Path string

// AWS kinds.
const (
	AWSEC2     Path = "aws.compute.EC2"
	AWSECS     Path = "aws.compute.ECS"
	AWSFargate Path = "aws.compute.Fargate"
	AWSLambda  Path = "aws.compute.Lambda"

	AWSELB             Path = "aws.network.ELB"
	AWSVPC             Path = "aws.network.VPC"
	AWSInternetGateway Path = "aws.network.InternetGateway"
	AWSNATGateway      Path = "aws.network.NATGateway"
	AWSCloudFront      Path = "aws.network.CloudFront"
	AWSRoute53         Path = "aws.network.Route53"

	AWSRDS         Path = "aws.database.RDS"
	AWSElastiCache Path = "aws.database.ElastiCache"
	AWSDynamoDB    Path = "aws.database.Dynamodb"

	AWSIAM            Path = "aws.security.IAM"
	AWSCognito        Path = "aws.security.Cognito"
	AWSSecretsManager Path = "aws.security.SecretsManager"
	AWSWAF            Path = "aws.security.WAF"
	AWSShield         Path = "aws.security.Shield"

	AWSParameterStore Path = "aws.management.ParameterStore"
	AWSCloudwatch     Path = "aws.management.Cloudwatch"

	AWSS3 Path = "aws.storage.S3"

	AWSSQS Path = "aws.integration.SQS"
	AWSSNS Path = "aws.integration.SNS"

	AWSUsers Path = "aws.general.Users"
)

// On-premises and generic kinds.
const (
	OnpremPostgreSQL Path = "onprem.database.PostgreSQL"
	OnpremMySQL      Path = "onprem.database.MySQL"
	OnpremRedis      Path = "onprem.inmemory.Redis"
	OnpremUsers      Path = "onprem.client.Users"
	OnpremClient     Path = "onprem.client.Client"
	OnpremNginx      Path = "onprem.network.Nginx"

	GenericBlank Path = "generic.blank.Blank"
)

// Style is the Graphviz presentation of a kind.
type Style struct {
	Shape     string // Graphviz node shape
	FillColor string // background fill; empty means unfilled
	FontColor string
	PenColor  string // outline colour
}

// Kind is a resolved catalog entry.
type Kind struct {
	Provider string
	Category string
	Name     string
	Style    Style
}

// Path returns the dotted path of the kind.
func (k Kind) Path() Path {
	return Path(k.Provider + "." + k.Category + "." + k.Name)
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k.Path()) }

// IsZero reports whether k is the zero Kind (not resolved from the catalog).
func (k Kind) IsZero() bool { return k.Name == "" }

// categoryStyles holds the look of every provider/category pair.
// Colours follow the AWS architecture icon palette for AWS categories.
var categoryStyles = map[string]Style{
	"aws.compute":     {Shape: "box3d", FillColor: "#ED7100", FontColor: "#FFFFFF", PenColor: "#B85600"},
	"aws.network":     {Shape: "hexagon", FillColor: "#8C4FFF", FontColor: "#FFFFFF", PenColor: "#6B3AC4"},
	"aws.database":    {Shape: "cylinder", FillColor: "#C925D1", FontColor: "#FFFFFF", PenColor: "#9A1CA0"},
	"aws.security":    {Shape: "octagon", FillColor: "#DD344C", FontColor: "#FFFFFF", PenColor: "#A9273A"},
	"aws.management":  {Shape: "box", FillColor: "#E7157B", FontColor: "#FFFFFF", PenColor: "#B0105E"},
	"aws.storage":     {Shape: "folder", FillColor: "#7AA116", FontColor: "#FFFFFF", PenColor: "#5C7A10"},
	"aws.integration": {Shape: "box", FillColor: "#E7157B", FontColor: "#FFFFFF", PenColor: "#B0105E"},
	"aws.general":     {Shape: "oval", FillColor: "#232F3E", FontColor: "#FFFFFF", PenColor: "#232F3E"},

	"onprem.database": {Shape: "cylinder", FillColor: "#336791", FontColor: "#FFFFFF", PenColor: "#254B6A"},
	"onprem.inmemory": {Shape: "cylinder", FillColor: "#D82C20", FontColor: "#FFFFFF", PenColor: "#A22118"},
	"onprem.client":   {Shape: "oval", FillColor: "#5A6B86", FontColor: "#FFFFFF", PenColor: "#434F63"},
	"onprem.network":  {Shape: "hexagon", FillColor: "#009639", FontColor: "#FFFFFF", PenColor: "#006F2A"},

	"generic.blank": {Shape: "plaintext", FontColor: "#2D3436"},
}

var catalog = buildCatalog(
	AWSEC2, AWSECS, AWSFargate, AWSLambda,
	AWSELB, AWSVPC, AWSInternetGateway, AWSNATGateway, AWSCloudFront, AWSRoute53,
	AWSRDS, AWSElastiCache, AWSDynamoDB,
	AWSIAM, AWSCognito, AWSSecretsManager, AWSWAF, AWSShield,
	AWSParameterStore, AWSCloudwatch,
	AWSS3,
	AWSSQS, AWSSNS,
	AWSUsers,
	OnpremPostgreSQL, OnpremMySQL, OnpremRedis, OnpremUsers, OnpremClient, OnpremNginx,
	GenericBlank,
)

func buildCatalog(paths ...Path) map[Path]Kind {
	m := make(map[Path]Kind, len(paths))
	for _, p := range paths {
		provider, category, name, ok := split(p)
		if !ok {
			panic("icons: malformed catalog path " + string(p))
		}
		style, ok := categoryStyles[provider+"."+category]
		if !ok {
			panic("icons: no style for " + string(p))
		}
		m[p] = Kind{Provider: provider, Category: category, Name: name, Style: style}
	}
	return m
}

func split(p Path) (provider, category, name string, ok bool) {
	parts := strings.Split(string(p), ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

// Lookup resolves a path to its catalog entry.
func Lookup(p Path) (Kind, error) {
	if _, _, _, ok := split(p); !ok {
		return Kind{}, errors.New(errors.ErrCodeUnknownKind, "malformed node kind %q (want provider.category.Name)", p)
	}
	k, ok := catalog[p]
	if !ok {
		return Kind{}, errors.New(errors.ErrCodeUnknownKind, "unknown node kind %q", p)
	}
	return k, nil
}

// Paths returns every catalog path in sorted order.
func Paths() []Path {
	return slices.Sorted(maps.Keys(catalog))
}
