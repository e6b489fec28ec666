// Package tablevec turns heterogeneous tables into numeric feature
// frames suitable for machine learning.
//
// A TableVectorizer infers each column's type from its string content,
// routes columns into four groups (numeric, datetime, low-cardinality
// categorical, high-cardinality categorical) and delegates each group
// to a configurable transformer. The fit/transform split mirrors the
// usual estimator contract: Fit learns the routing plan and all
// transformer state, Transform replays that state against new rows.
//
//	tv, err := tablevec.New(
//		tablevec.WithCardinalityThreshold(10),
//		tablevec.WithNumericalTransformer(encoder.NewStandardScaler()),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out, err := tv.FitTransform(df)
//
// Fitted vectorizers can be snapshotted to any blobstore.BlobStore via
// Save and restored with Load, so a model trained in one process can
// serve transforms in another.
package tablevec
