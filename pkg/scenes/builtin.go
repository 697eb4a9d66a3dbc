package scenes

import (
	"github.com/macro-ai/archdiagrams/pkg/diagram"
	"github.com/macro-ai/archdiagrams/pkg/icons"
)

// Registry keys of the built-in scenes.
const (
	KeyCurrentHobby  = "current-hobby"
	KeyConsolidated  = "consolidated"
	KeyFutureScaling = "future-scaling"
	KeyNeonBranching = "neon-branching"
)

func builtin() []Scene {
	return []Scene{
		{Key: KeyCurrentHobby, Name: "Current Hobby Architecture", Builder: CurrentHobby},
		{Key: KeyConsolidated, Name: "Consolidated Architecture", Builder: Consolidated},
		{Key: KeyFutureScaling, Name: "Future Scaling Architecture", Builder: FutureScaling},
		{Key: KeyNeonBranching, Name: "Corrected Neon Branching", Builder: NeonBranching},
	}
}

// CurrentHobby is the EC2-based hobby deployment.
func CurrentHobby() (*diagram.Diagram, error) {
	d := diagram.New("Current Hobby Deployment Architecture", diagram.TopToBottom)

	users := d.Node(icons.AWSUsers, "End Users")
	igw := d.Node(icons.AWSInternetGateway, "Internet Gateway")

	var publicSubnet, privateSubnet, alb, asg, rds, redis, params *diagram.Node
	d.Cluster("VPC", func(c *diagram.Cluster) {
		publicSubnet = c.Node(icons.AWSNATGateway, "Public Subnet\n(ELB + NAT)")
		privateSubnet = c.Node(icons.AWSEC2, "Private Subnet\n(EC2 Instances)")
		alb = c.Node(icons.AWSELB, "Application Load Balancer")
		asg = c.Node(icons.AWSEC2, "EC2 Auto Scaling Group")
		rds = c.Node(icons.AWSRDS, "RDS PostgreSQL")
		redis = c.Node(icons.AWSElastiCache, "ElastiCache Redis")
		params = c.Node(icons.AWSParameterStore, "Parameter Store")
	})

	cognito := d.Node(icons.AWSCognito, "AWS Cognito")

	d.Chain(users, igw, publicSubnet)
	d.Connect(publicSubnet, alb)
	d.Connect(alb, privateSubnet)
	d.Connect(privateSubnet, asg)
	d.Connect(asg, rds, diagram.Attrs{Color: "blue", Style: diagram.Dashed})
	d.Connect(asg, redis, diagram.Attrs{Color: "red", Style: diagram.Dashed})
	d.Connect(asg, params, diagram.Attrs{Color: "green", Style: diagram.Dashed})
	d.Connect(asg, cognito, diagram.Attrs{Color: "orange", Style: diagram.Dashed})

	return d, nil
}

// Consolidated is ECS Fargate on AWS with free-tier external data services.
func Consolidated() (*diagram.Diagram, error) {
	d := diagram.New("Consolidated ECS + External Services Architecture", diagram.TopToBottom)

	users := d.Node(icons.OnpremUsers, "End Users")

	var neon, upstash *diagram.Node
	d.Cluster("External Services (Free Tier)", func(c *diagram.Cluster) {
		neon = c.Node(icons.OnpremPostgreSQL, "Neon PostgreSQL\n(Free - 1GB)")
		upstash = c.Node(icons.OnpremRedis, "Upstash Redis\n(Free - 30MB)")
	})

	var alb, service, tasks, secrets *diagram.Node
	d.Cluster("AWS Infrastructure (Minimal Cost)", func(c *diagram.Cluster) {
		alb = c.Node(icons.AWSELB, "Application Load Balancer")
		c.Cluster("ECS Fargate Cluster", func(c *diagram.Cluster) {
			service = c.Node(icons.AWSECS, "ECS Service")
			tasks = c.Node(icons.AWSFargate, "Fargate Tasks\n(API + UI)\n256MB/512MB")
		})
		secrets = c.Node(icons.AWSSecretsManager, "AWS Secrets Manager")
	})

	cognito := d.Node(icons.AWSCognito, "AWS Cognito")
	s3 := d.Node(icons.AWSS3, "S3 Storage")
	cloudwatch := d.Node(icons.AWSCloudwatch, "CloudWatch\n(Monitoring)")
	iam := d.Node(icons.AWSIAM, "IAM Roles")

	d.Chain(users, alb, service, tasks)

	d.Connect(tasks, neon, diagram.Attrs{Color: "blue", Style: diagram.Solid, Label: "Neon DB"})
	d.Connect(tasks, upstash, diagram.Attrs{Color: "red", Style: diagram.Solid, Label: "Upstash Redis"})

	d.Connect(tasks, secrets, diagram.Attrs{Color: "green", Style: diagram.Dashed})
	d.Connect(tasks, cognito, diagram.Attrs{Color: "orange", Style: diagram.Dashed})
	d.Connect(tasks, s3, diagram.Attrs{Color: "purple", Style: diagram.Dashed})
	d.Connect(tasks, iam, diagram.Attrs{Color: "brown", Style: diagram.Dashed})

	d.Connect(tasks, cloudwatch, diagram.Attrs{Color: "gray", Style: diagram.Dotted})

	return d, nil
}

// FutureScaling is the auto-scaled deployment behind CloudFront, WAF and Shield.
//
// The "Auto Scale" and "Auto-branching" annotations are extra edges drawn
// from point anchors. Earlier renderings of this diagram did not show them;
// drop the Annotate calls to reproduce those images exactly.
func FutureScaling() (*diagram.Diagram, error) {
	d := diagram.New("Future Scaling Architecture", diagram.TopToBottom)

	users := d.Node(icons.OnpremUsers, "End Users")
	cdn := d.Node(icons.AWSCloudFront, "CloudFront CDN")
	waf := d.Node(icons.AWSWAF, "AWS WAF")
	shield := d.Node(icons.AWSShield, "AWS Shield")
	alb := d.Node(icons.AWSELB, "Application Load Balancer")

	var api, ui *diagram.Node
	d.Cluster("ECS Fargate Cluster (Auto-Scaled)", func(c *diagram.Cluster) {
		c.Cluster("API Service", func(c *diagram.Cluster) {
			api = c.Node(icons.AWSFargate, "API Tasks\n(2-10 instances)")
		})
		c.Cluster("UI Service", func(c *diagram.Cluster) {
			ui = c.Node(icons.AWSFargate, "UI Tasks\n(2-5 instances)")
		})
	})

	var primary, replicas, redis *diagram.Node
	d.Cluster("External Database Services", func(c *diagram.Cluster) {
		primary = c.Node(icons.OnpremPostgreSQL, "Neon Primary\n(Production Branch)")
		replicas = c.Node(icons.OnpremPostgreSQL, "Neon Read Replicas\n(Auto-created)")
		redis = c.Node(icons.OnpremRedis, "Upstash Redis\n(Scaled Instance)")
	})

	s3 := d.Node(icons.AWSS3, "S3 Storage")
	cloudwatch := d.Node(icons.AWSCloudwatch, "CloudWatch Monitoring")

	d.Chain(users, cdn, waf, shield, alb)
	d.Fan([]*diagram.Node{alb}, []*diagram.Node{api, ui})

	d.Connect(api, primary, diagram.Attrs{Color: "blue", Style: diagram.Solid, Label: "Primary DB"})
	d.Connect(api, replicas, diagram.Attrs{Color: "blue", Style: diagram.Dashed, Label: "Read Replicas"})
	d.Connect(api, redis, diagram.Attrs{Color: "red", Style: diagram.Solid, Label: "Redis Cache"})

	d.Connect(ui, s3, diagram.Attrs{Color: "green", Style: diagram.Dashed})

	d.Fan([]*diagram.Node{api, ui}, []*diagram.Node{cloudwatch}, diagram.Attrs{Color: "gray", Style: diagram.Dotted})

	d.Annotate(api, diagram.Attrs{Label: "Auto Scale\n2-10 tasks", Color: "orange", Style: diagram.Dashed})
	d.Annotate(ui, diagram.Attrs{Label: "Auto Scale\n2-5 tasks", Color: "orange", Style: diagram.Dashed})
	d.Annotate(replicas, diagram.Attrs{Label: "Auto-branching", Color: "purple", Style: diagram.Dotted})

	return d, nil
}

// NeonBranching shows how Neon database branches flow from production to
// feature work and back through the deployment pipeline.
func NeonBranching() (*diagram.Diagram, error) {
	d := diagram.New("Corrected Neon Database Branching Strategy", diagram.LeftToRight)

	prodDB := d.Node(icons.OnpremPostgreSQL, "Production DB\n(Main Branch)\n- Live data\n- Latest schema\n- pgvector enabled")
	stagingDB := d.Node(icons.OnpremPostgreSQL, "Staging DB\n(Branch from Production)\n- Pre-deployment testing\n- Schema validation")
	featureDB := d.Node(icons.OnpremPostgreSQL, "Feature DB\n(Branch from Staging)\n- Feature development\n- Isolated testing")
	dev := d.Node(icons.OnpremClient, "Development\n(Localhost)\n- Uses branch DB\n- Based on git branch")

	var featureDeploy, stagingValidation, prodRelease *diagram.Node
	d.Cluster("Deployment Pipeline", func(c *diagram.Cluster) {
		featureDeploy = c.Node(icons.GenericBlank, "Feature\nDeployment")
		stagingValidation = c.Node(icons.GenericBlank, "Staging\nValidation")
		prodRelease = c.Node(icons.GenericBlank, "Production\nRelease")
	})

	var featureECS, stagingECS, prodECS *diagram.Node
	d.Cluster("ECS Services", func(c *diagram.Cluster) {
		featureECS = c.Node(icons.AWSFargate, "Feature\nECS Tasks")
		stagingECS = c.Node(icons.AWSFargate, "Staging\nECS Tasks")
		prodECS = c.Node(icons.AWSFargate, "Production\nECS Tasks")
	})

	d.Connect(prodDB, stagingDB, diagram.Attrs{Color: "red", Style: diagram.Solid, Label: "Auto-branch"})
	d.Connect(stagingDB, featureDB, diagram.Attrs{Color: "blue", Style: diagram.Solid, Label: "Auto-branch"})

	d.Connect(stagingDB, prodDB, diagram.Attrs{Color: "red", Style: diagram.Dashed, Label: "Schema sync"})
	d.Connect(featureDB, stagingDB, diagram.Attrs{Color: "blue", Style: diagram.Dashed, Label: "Schema sync"})

	d.Connect(dev, featureDB, diagram.Attrs{Color: "green", Style: diagram.Solid, Label: "Local dev"})
	d.Connect(dev, stagingDB, diagram.Attrs{Color: "orange", Style: diagram.Solid, Label: "Local staging"})

	d.Connect(featureECS, featureDB, diagram.Attrs{Color: "blue", Style: diagram.Solid})
	d.Connect(stagingECS, stagingDB, diagram.Attrs{Color: "red", Style: diagram.Solid})
	d.Connect(prodECS, prodDB, diagram.Attrs{Color: "purple", Style: diagram.Solid})

	d.Connect(featureDB, featureDeploy)
	d.Connect(featureDeploy, stagingDB)
	d.Connect(featureDeploy, stagingValidation)
	d.Connect(stagingValidation, prodDB)
	d.Connect(stagingValidation, prodRelease)

	return d, nil
}
