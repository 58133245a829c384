package sqlinline

// Listing queries carry a %s pair for the ORDER BY clause. The repository
// resolves the pair against column/direction whitelists before formatting;
// every value is bound as a parameter.

const QInsertSubmission = `--sql 1a2b3c4d-5e6f-4708-91a2-b3c4d5e6f708
insert into submissions(campaign_id, donor_name, email, phone, amount, payment_method, payment_id, status, notes, donor_country, submitted_at, updated_at)
values ($1::bigint, $2::text, $3::text, $4::text, $5::numeric, $6::text, $7::text, $8::text, $9::text, $10::text, now(), now())
returning id, submitted_at;
`

const QSelectSubmissionByID = `--sql 8f7e6d5c-4b3a-4291-80f7-e6d5c4b3a291
select id, campaign_id, donor_name, email, phone, amount::text, payment_method, payment_id, status, notes, donor_country, submitted_at, updated_at
from submissions
where id = $1::bigint;
`

const QUpdateSubmission = `--sql 3c2b1a0f-9e8d-4c7b-a695-8d7c6b5a4f3e
update submissions
set status = coalesce($2::text, status),
    payment_id = coalesce($3::text, payment_id),
    notes = coalesce($4::text, notes),
    updated_at = now()
where id = $1::bigint;
`

const QListSubmissions = `--sql 6e5d4c3b-2a19-4087-b6e5-d4c3b2a19087
select id, campaign_id, donor_name, email, phone, amount::text, payment_method, payment_id, status, notes, donor_country, submitted_at, updated_at
from submissions
where ($1::bigint = 0 or campaign_id = $1::bigint)
  and ($2::text = '' or status = $2::text)
order by %s %s
limit nullif($3::int, -1) offset $4::int;
`

const QListSubmissionsWithCampaign = `--sql b1c2d3e4-f5a6-4b7c-8d9e-0f1a2b3c4d5e
select s.id, s.campaign_id, s.donor_name, s.email, s.phone, s.amount::text, s.payment_method, s.payment_id, s.status, s.notes, s.donor_country, s.submitted_at, s.updated_at, c.title
from submissions s
left join campaigns c on c.id = s.campaign_id
where ($1::bigint = 0 or s.campaign_id = $1::bigint)
  and ($2::text = '' or s.status = $2::text)
order by %s %s
limit nullif($3::int, -1) offset $4::int;
`

const QCountSubmissions = `--sql d9c8b7a6-f5e4-4d3c-b2a1-90f8e7d6c5b4
select count(*)
from submissions
where ($1::bigint = 0 or campaign_id = $1::bigint)
  and ($2::text = '' or status = $2::text);
`

const QCampaignStats = `--sql e0f1a2b3-c4d5-4e6f-8a9b-0c1d2e3f4a5b
select count(*),
       count(*) filter (where status = 'completed'),
       count(*) filter (where status = 'pending'),
       coalesce(sum(amount) filter (where status = 'completed'), 0)::text,
       (avg(amount) filter (where status = 'completed'))::text
from submissions
where campaign_id = $1::bigint;
`
