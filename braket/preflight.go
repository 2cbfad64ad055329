// SPDX-License-Identifier: MIT
package braket

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsbraket "github.com/aws/aws-sdk-go-v2/service/braket"
	awstypes "github.com/aws/aws-sdk-go-v2/service/braket/types"
)

// CheckAccess probes the Braket API with a one-device search, the
// cheapest call that exercises the braket:SearchDevices permission.
// Credentials without Braket access come back as ErrAccessDenied so
// callers can print the RequiredActions before anything is billed;
// other failures wrap the transport error unchanged.
func (r *Runner) CheckAccess(ctx context.Context) error {
	_, err := r.quantum.SearchDevices(ctx, &awsbraket.SearchDevicesInput{
		Filters: []awstypes.SearchDevicesFilter{{
			Name:   aws.String("deviceType"),
			Values: []string{"QPU"},
		}},
		MaxResults: aws.Int32(1),
	})
	if err != nil {
		return classify("search devices", err)
	}

	return nil
}
