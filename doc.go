// redk is the Real-Estate Data Kit. It contains the record normalization
// pipeline which turns raw real-estate transaction data from many different
// systems into one canonical record type suitable for spatial-temporal
// aggregation and display.
//
// The pipeline is built from a few small stages:
//
// 1. Source
//
//    A redk.Source is at the beginning of every run. Your transaction data is
//    everywhere - government CSV dumps, S3 buckets, SQL databases, Kafka
//    topics, JSON documents posted over HTTP. Different Sources know how to
//    interact with the various systems holding your data and get it out one
//    row at a time, all wrapped up behind one convenient interface. A Source
//    does not manipulate the data in any way beyond presenting each row as a
//    loose key-value mapping - normalization is the pipeline's job.
//
// 2. Field resolution
//
//    Every source names its fields differently. The same unit price might
//    arrive as "price", "unit_price", or "單價元平方公尺" depending on which
//    agency exported the file. An AliasConfig maps each canonical field to an
//    ordered list of acceptable source keys, and Resolve walks that list
//    returning the first present, non-empty value.
//
// 3. Derivation
//
//    Some canonical values don't exist in the source directly. Transaction
//    dates arrive in the minguo era calendar and are converted to Gregorian
//    YYYY-MM. A missing unit price is derived from the total price and the
//    floor area when both are available.
//
// 4. Validation and filtering
//
//    Rows with unusable dates, prices, or coordinates are dropped, as are
//    rows outside the caller's price bounds or building-type allow-list. A
//    bad row is never fatal - it is counted and the run continues.
//
// The Pipeline orchestrates the stages and returns the accepted Transaction
// records along with accepted/skipped counts.
package redk
