package warehouse

// reviewsQuery pulls one row per review for a seller. Reviewer names
// resolve through a second member join; attached review images
// (image_type 14) aggregate into an ordered URL array. $1 seller name,
// $2 thumbnail base URL, $3 lookback months.
const reviewsQuery = `
WITH seller_reviews AS (
    SELECT
        pr.review_seq    AS review_id,
        pi.product_id    AS product_id,
        pr.product_seq   AS product_internal_id,
        m.user_seq       AS seller_id,
        m.user_name      AS seller_name,
        pr.user_seq      AS reviewer_id,
        pr.review        AS review_text,
        pr.ratio         AS rating,
        pr.review_length AS text_length,
        pr.created_at    AS created_at,
        COALESCE(pr.seller_comment, '') AS seller_comment,
        COALESCE($2 || ppi.image_path || '?type=w&w=150', '') AS thumbnail_url,
        pi.cost_price    AS cost_price
    FROM member m
        JOIN product_review pr ON pr.seller_seq = m.user_seq
        JOIN product_info pi   ON pi.product_seq = pr.product_seq
        LEFT JOIN product_preview_image ppi ON ppi.product_seq = pi.product_seq
    WHERE m.user_name = $1
      AND pr.created_at > now() - make_interval(months => $3)
      AND pr.review_length > 0
      AND pi.cost_price > 0
)
SELECT
    sr.review_id,
    sr.product_id,
    sr.product_internal_id,
    sr.seller_id,
    sr.seller_name,
    sr.reviewer_id,
    COALESCE(rm.user_name, '') AS reviewer_name,
    sr.review_text,
    sr.rating,
    sr.text_length,
    sr.created_at,
    sr.seller_comment,
    sr.thumbnail_url,
    sr.cost_price,
    COALESCE(
        array_agg($2 || ai.image_path || '?type=w&w=150' ORDER BY ai.image_seq)
            FILTER (WHERE ai.image_path IS NOT NULL),
        '{}'
    ) AS attached_image_urls
FROM seller_reviews sr
    LEFT JOIN member rm ON rm.user_seq = sr.reviewer_id
    LEFT JOIN attached_image ai
           ON ai.relation_seq = sr.review_id AND ai.image_type = 14
GROUP BY
    sr.review_id, sr.product_id, sr.product_internal_id, sr.seller_id,
    sr.seller_name, sr.reviewer_id, rm.user_name, sr.review_text,
    sr.rating, sr.text_length, sr.created_at, sr.seller_comment,
    sr.thumbnail_url, sr.cost_price
ORDER BY sr.created_at, sr.review_id
`

// catalogQuery lists perennial products created within the last year,
// one row per category assignment. The preview image falls back to the
// image_seq=1 row when the product-level path is empty. $1 thumbnail
// base URL.
const catalogQuery = `
SELECT
    pi.product_id,
    pi.product_name AS canonical_name,
    COALESCE(c.category_name, '') AS category_name,
    pi.cost_price,
    COALESCE($1 || NULLIF(COALESCE(ppi.image_path, pppi.image_path), '') || '?type=w&w=500', '') AS thumbnail_url
FROM product_info pi
    LEFT JOIN product_preview_image ppi  ON ppi.product_seq = pi.product_seq
    LEFT JOIN product_preview_image pppi ON pppi.image_seq = 1 AND pppi.product_seq = pi.product_seq
    LEFT JOIN product_category pc ON pc.product_seq = pi.product_seq
    LEFT JOIN category c          ON c.category_seq = pc.category_seq
WHERE pi.flash = 'N'
  AND pi.deleted = 'N'
  AND pi.excluded = 'N'
  AND pi.cost_price > 0
  AND pi.created_at >= now() - interval '1 year'
ORDER BY pi.product_seq, c.category_seq
`

// flashQuery lists flash products with the upstream-assigned category
// levels and llm-generated display name. $1 thumbnail base URL.
const flashQuery = `
SELECT
    fpi.product_id,
    fpi.product_name AS llm_name,
    COALESCE(fpi.lv2_category_name, '') AS level2_category,
    COALESCE(fpi.lv3_category_name, '') AS level3_category,
    COALESCE(fpi.lv4_category_name, '') AS level4_category,
    pi.cost_price,
    COALESCE($1 || NULLIF(COALESCE(ppi.image_path, pppi.image_path), '') || '?type=w&w=500', '') AS thumbnail_url,
    fpi.request_at AS requested_at
FROM flash_product_info fpi
    JOIN product_info pi ON pi.product_id = fpi.product_id
    LEFT JOIN product_preview_image ppi  ON ppi.product_seq = pi.product_seq
    LEFT JOIN product_preview_image pppi ON pppi.image_seq = 1 AND pppi.product_seq = pi.product_seq
WHERE fpi.product_id IS NOT NULL
  AND pi.cost_price > 0
ORDER BY fpi.request_at, fpi.product_id
`
