package bedrock

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultRegion      = "us-east-1"
	defaultSessionName = "SkyentBedrockSession"
)

type Credentials struct {
	Region       string
	AccessKey    string
	SecretKey    string
	SessionToken string
	RoleARN      string
}

func (c Credentials) key() string {
	return fmt.Sprintf("%s:%s:%s", c.Region, c.AccessKey, c.RoleARN)
}

//go:generate mockery --name=Runtime --dir=. --output=./mocks --filename=runtime_mock.go --case=underscore --with-expecter
type Runtime interface {
	InvokeModel(
		ctx context.Context,
		params *bedrockruntime.InvokeModelInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.InvokeModelOutput, error)
	ApplyGuardrail(
		ctx context.Context,
		params *bedrockruntime.ApplyGuardrailInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.ApplyGuardrailOutput, error)
}

// Client hands out one runtime client per credential set.
//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter
type Client interface {
	Runtime(ctx context.Context, creds Credentials) (Runtime, error)
}

type client struct {
	pool sync.Map
	sf   singleflight.Group
}

func NewClient() Client {
	return &client{}
}

func (c *client) Runtime(ctx context.Context, creds Credentials) (Runtime, error) {
	key := creds.key()
	if v, ok := c.pool.Load(key); ok {
		return v.(*bedrockruntime.Client), nil
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		if v, ok := c.pool.Load(key); ok {
			return v, nil
		}
		cfg, err := LoadConfig(ctx, creds)
		if err != nil {
			return nil, err
		}
		rc := bedrockruntime.NewFromConfig(cfg)
		c.pool.Store(key, rc)
		return rc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*bedrockruntime.Client), nil
}

// LoadConfig builds an AWS config from static keys, assuming RoleARN when set.
func LoadConfig(ctx context.Context, creds Credentials) (aws.Config, error) {
	region := creds.Region
	if region == "" {
		region = DefaultRegion
	}
	if creds.RoleARN == "" {
		return loadAWSConfig(ctx, creds.AccessKey, creds.SecretKey, creds.SessionToken, region)
	}

	baseCfg, err := loadAWSConfig(ctx, creds.AccessKey, creds.SecretKey, creds.SessionToken, region)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load base AWS config: %w", err)
	}
	out, err := sts.NewFromConfig(baseCfg).AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(creds.RoleARN),
		RoleSessionName: aws.String(defaultSessionName),
	})
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to assume role: %w", err)
	}
	return loadAWSConfig(ctx,
		aws.ToString(out.Credentials.AccessKeyId),
		aws.ToString(out.Credentials.SecretAccessKey),
		aws.ToString(out.Credentials.SessionToken),
		region,
	)
}

func loadAWSConfig(ctx context.Context, accessKey, secretKey, sessionToken, region string) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     accessKey,
					SecretAccessKey: secretKey,
					SessionToken:    sessionToken,
				}, nil
			},
		)))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}
